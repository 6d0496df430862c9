package systems

import (
	"fmt"

	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/gamelog"
	"gloomdelve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RunMonsterAI - точка, где восприятие превращается в реакцию.
// Каждый монстр проверяет, попадает ли позиция игрока в его поле
// зрения, и если да - подает голос через журнал. Никакого движения
// и боя здесь нет: мир система не мутирует.
//
// Обязана выполняться СТРОГО после RunVisibility в том же диспатче:
// читаемые VisibleTiles должны отражать геометрию текущего хода.
// Монстры оцениваются независимо, порядок обхода не важен.
func RunMonsterAI(w *ecs.World) {
	playerPos := ecs.MustResource[component.Position](w)
	log := ecs.MustResource[*gamelog.Log](w)

	for _, id := range w.Query(component.CViewshed, component.CMonster) {
		vs := component.ViewshedOf(w, id)
		if !vs.VisibleTiles.Contains(playerPos) {
			continue
		}

		name := component.DisplayName(w, id)
		log.Append(gamelog.KindSpeech, fmt.Sprintf("%s злобно рычит в вашу сторону!", name))

		logger.Log.WithFields(logrus.Fields{
			"system":  "monster_ai",
			"entity":  id,
			"monster": name,
		}).Debug("monster spotted the player")
	}
}
