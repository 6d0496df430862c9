package server

import (
	"encoding/json"
	"net/http"

	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/engine"
	"gloomdelve-server/internal/gamemap"
)

// registerDebugRoutes регистрирует debug-эндпоинты
func (s *Server) registerDebugRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", s.handleDebugState)
	mux.HandleFunc("/debug/entities", s.handleDebugEntities)
}

// /debug/state - сводка по симуляции: состояние планировщика, номер хода,
// число сущностей и подписчиков
func (s *Server) handleDebugState(w http.ResponseWriter, _ *http.Request) {
	type StateSummary struct {
		RunState    string `json:"run_state"`
		Turn        int    `json:"turn"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		EntityCount int    `json:"entity_count"`
		Subscribers int    `json:"subscribers"`
	}

	s.mu.Lock()
	world := s.session.World
	m := ecs.MustResource[*gamemap.Map](world)
	summary := StateSummary{
		RunState:    ecs.MustResource[engine.RunState](world).String(),
		Turn:        s.session.Scheduler.Turns(),
		Width:       m.Width,
		Height:      m.Height,
		EntityCount: len(world.Query(component.CPosition)),
		Subscribers: s.hub.SubscriberCount(),
	}
	s.mu.Unlock()

	writeJSON(w, summary)
}

// /debug/entities - дамп всех сущностей, включая скрытое от клиента
// (монстров в тумане, флаг Dirty у viewshed'ов)
func (s *Server) handleDebugEntities(w http.ResponseWriter, _ *http.Request) {
	type EntityDump struct {
		ID           uint64 `json:"id"`
		Name         string `json:"name"`
		X            int    `json:"x"`
		Y            int    `json:"y"`
		IsPlayer     bool   `json:"is_player"`
		VisionRange  int    `json:"vision_range,omitempty"`
		ViewshedSize int    `json:"viewshed_size,omitempty"`
		Dirty        bool   `json:"dirty,omitempty"`
	}

	s.mu.Lock()
	world := s.session.World
	ids := world.Query(component.CPosition)

	// Пустой дамп должен сериализоваться как [], а не null
	dump := make([]EntityDump, 0, len(ids))
	for _, id := range ids {
		pos, _ := component.PositionOf(world, id)
		d := EntityDump{
			ID:       uint64(id),
			Name:     component.DisplayName(world, id),
			X:        pos.X,
			Y:        pos.Y,
			IsPlayer: id == s.session.PlayerID,
		}
		if vs := component.ViewshedOf(world, id); vs != nil {
			d.VisionRange = vs.Range
			d.ViewshedSize = len(vs.VisibleTiles)
			d.Dirty = vs.Dirty
		}
		dump = append(dump, d)
	}
	s.mu.Unlock()

	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
