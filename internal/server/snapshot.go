package server

import (
	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/engine"
	"gloomdelve-server/internal/gamelog"
	"gloomdelve-server/internal/gamemap"
	"gloomdelve-server/pkg/api"
)

// buildSnapshot собирает DTO-снимок мира для клиентов.
// Отправляются только исследованные тайлы (туман войны) и сущности
// на видимых клетках; игрок виден всегда.
func (s *Server) buildSnapshot(msgType string) api.Snapshot {
	w := s.session.World
	m := ecs.MustResource[*gamemap.Map](w)
	state := ecs.MustResource[engine.RunState](w)

	snap := api.Snapshot{
		Type:     msgType,
		Turn:     s.session.Scheduler.Turns(),
		RunState: state.String(),
		Grid:     api.GridMeta{Width: m.Width, Height: m.Height},
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.At(x, y)
			if !t.Explored {
				continue
			}
			snap.Map = append(snap.Map, api.TileView{
				X: x, Y: y,
				Env:        t.Env,
				IsWall:     t.Wall,
				IsVisible:  t.Visible,
				IsExplored: t.Explored,
			})
		}
	}

	for _, id := range w.Query(component.CPosition, component.CRenderable) {
		pos, _ := component.PositionOf(w, id)

		// Монстров в тумане клиент не видит.
		if id != s.session.PlayerID && !m.At(pos.X, pos.Y).Visible {
			continue
		}

		view := api.EntityView{ID: uint64(id), Name: component.DisplayName(w, id)}
		view.Pos.X, view.Pos.Y = pos.X, pos.Y

		if r, ok := component.RenderableOf(w, id); ok {
			view.Render.Glyph = r.Glyph
			view.Render.FG = r.FG
			view.Render.BG = r.BG
			view.Render.Order = r.Order
		}
		snap.Entities = append(snap.Entities, view)
	}

	// INIT встречает нового клиента окном недавней истории (приветствие,
	// последние реплики могли уйти в эфир до его подключения); UPDATE
	// забирает только новые записи с прошлого снимка.
	var entries []gamelog.Entry
	if msgType == "INIT" {
		entries = s.session.Log.Recent()
	} else {
		entries = s.session.Log.Drain()
	}
	for _, e := range entries {
		snap.Logs = append(snap.Logs, api.LogEntry{
			Text:      e.Text,
			Type:      e.Kind,
			Timestamp: e.Timestamp,
		})
	}

	return snap
}
