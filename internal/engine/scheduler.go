package engine

import (
	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/gamemap"
	"gloomdelve-server/internal/input"
	"gloomdelve-server/internal/systems"
	"gloomdelve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Scheduler превращает непрерывно опрашиваемый цикл хоста в корректную
// пошаговую симуляцию: ровно один диспатч систем на одно принятое
// действие игрока - не больше и не меньше, сколько бы холостых кадров
// ни отрисовал хост в ожидании.
//
// Весь Tick выполняется синхронно в вызывающей горутине; фонового
// исполнения нет.
type Scheduler struct {
	world  *ecs.World
	source input.Source
	player ecs.EntityID
	turns  int
}

func NewScheduler(w *ecs.World, src input.Source, player ecs.EntityID) *Scheduler {
	return &Scheduler{world: w, source: src, player: player}
}

// Turns - сколько диспатчей выполнено с начала сессии.
func (s *Scheduler) Turns() int {
	return s.turns
}

// Tick выполняет один кадр машины состояний и возвращает новое состояние.
//
//   - Running: диспатч "видимость -> AI монстров" (жесткий тотальный
//     порядок, AI читает только свежую геометрию), затем Paused.
//   - Paused: один неблокирующий опрос ввода. Нет события или событие
//     не распознано - остаемся в Paused без каких-либо побочных
//     эффектов. Команда движения переводит в Running только если
//     позиция игрока реально изменилась.
func (s *Scheduler) Tick() RunState {
	state := ecs.MustResource[RunState](s.world)

	switch state {
	case StateRunning:
		systems.RunVisibility(s.world)
		systems.RunMonsterAI(s.world)
		s.turns++
		state = StatePaused

		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"turn":      s.turns,
		}).Debug("dispatch complete, waiting for input")

	case StatePaused:
		cmd, ok := s.source.Poll()
		if !ok {
			break // холостой кадр, частый случай
		}

		switch cmd.Kind {
		case input.KindMove:
			if s.tryMovePlayer(cmd.Dx, cmd.Dy) {
				state = StateRunning
			}
		default:
			// Нераспознанный ввод: игнорируем и ждем дальше.
			logger.Log.WithField("component", "scheduler").
				Debug("unrecognized input ignored")
		}
	}

	ecs.SetResource(s.world, state)
	return state
}

// tryMovePlayer пытается сдвинуть игрока на (dx,dy). Возвращает true,
// только если позиция изменилась: заблокированный стеной или границей
// карты шаг не считается действием и не запускает симуляцию.
func (s *Scheduler) tryMovePlayer(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}

	m := ecs.MustResource[*gamemap.Map](s.world)
	pos, ok := component.PositionOf(s.world, s.player)
	if !ok {
		panic("engine: player entity has no Position")
	}

	next := pos.Shift(dx, dy)
	if m.IsBlocked(next.X, next.Y) {
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"from":      pos,
			"to":        next,
		}).Debug("player move blocked")
		return false
	}

	// Позиция-компонент и ресурс "где игрок" всегда меняются вместе.
	s.world.Add(s.player, next)
	ecs.SetResource(s.world, next)

	if vs := component.ViewshedOf(s.world, s.player); vs != nil {
		vs.Dirty = true
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"from":      pos,
		"to":        next,
	}).Debug("player moved")
	return true
}
