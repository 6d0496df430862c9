package systems

import (
	"fmt"

	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/fov"
	"gloomdelve-server/internal/gamemap"
	"gloomdelve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RunVisibility пересчитывает поля зрения всех акторов с "грязным"
// Viewshed. Для игрока дополнительно переносит свежую видимость на
// карту: сбрасывает старые флаги и выставляет новые, плюс помечает
// тайлы исследованными (туман войны).
//
// Единственная система, которой разрешено писать флаги видимости карты.
func RunVisibility(w *ecs.World) {
	m := ecs.MustResource[*gamemap.Map](w)

	for _, id := range w.Query(component.CViewshed) {
		vs := component.ViewshedOf(w, id)
		if !vs.Dirty {
			continue
		}

		pos, ok := component.PositionOf(w, id)
		if !ok {
			// По контракту спавна недостижимо: Viewshed без Position -
			// нарушение целостности данных.
			panic(fmt.Sprintf("systems: entity %d has Viewshed but no Position", id))
		}

		vs.VisibleTiles = fov.Compute(pos, vs.Range, m.IsOpaque)
		vs.Dirty = false

		logger.Log.WithFields(logrus.Fields{
			"system":  "visibility",
			"entity":  id,
			"pos":     pos,
			"range":   vs.Range,
			"visible": len(vs.VisibleTiles),
		}).Debug("viewshed recomputed")

		if w.Has(id, component.CPlayer) {
			m.ClearVisible()
			for p := range vs.VisibleTiles {
				m.RevealTile(p.X, p.Y)
			}
		}
	}
}
