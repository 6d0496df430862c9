package engine

import (
	"math/rand"

	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/config"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/gamelog"
	"gloomdelve-server/internal/input"
	"gloomdelve-server/pkg/dungeon"
	"gloomdelve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Session - одна игровая сессия: мир со всеми ресурсами, очередь ввода
// и планировщик. Создается на старте процесса и живет до его конца.
type Session struct {
	World     *ecs.World
	Scheduler *Scheduler
	Input     *input.Queue
	Log       *gamelog.Log
	PlayerID  ecs.EntityID
}

// NewSession генерирует уровень и заселяет его: игрок в центре первой
// комнаты, по одному монстру в каждой из остальных. rng используется
// только на спавне (выбор варианта монстра), в пошаговой симуляции
// случайность не участвует.
func NewSession(cfg *config.Config, rng *rand.Rand) *Session {
	m, rooms := dungeon.Generate(cfg.Game, rng)

	w := ecs.NewWorld()
	log := gamelog.New()
	ecs.SetResource(w, m)
	ecs.SetResource(w, log)

	// Игрок - в стартовой комнате.
	px, py := rooms[0].Center()
	player := w.CreateEntity()
	w.Add(player, component.Position{X: px, Y: py})
	w.Add(player, component.Renderable{Glyph: "@", FG: "text-cyan-400", Order: 10})
	w.Add(player, &component.Viewshed{Range: cfg.Game.VisionRadius, Dirty: true})
	w.Add(player, component.Player{})
	w.Add(player, component.Name{Value: "Герой"})

	// Ресурс "где игрок" создается до запуска любых систем и дальше
	// обновляется только обработчиком движения.
	ecs.SetResource(w, component.Position{X: px, Y: py})

	// Монстры - по одному на комнату, стартовую пропускаем.
	for i, room := range rooms[1:] {
		mx, my := room.Center()
		spawnMonster(w, cfg.Game, rng, i+1, mx, my)
	}

	// Начальное состояние Running: первый же кадр выполняет диспатч,
	// до первого ожидания ввода.
	ecs.SetResource(w, StateRunning)

	log.Append(gamelog.KindInfo, "Добро пожаловать в Gloomdelve.")

	queue := input.NewQueue(cfg.Server.InQueueSize)
	sched := NewScheduler(w, queue, player)

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"rooms":     len(rooms),
		"monsters":  len(rooms) - 1,
		"player":    component.Position{X: px, Y: py},
	}).Info("session created")

	return &Session{
		World:     w,
		Scheduler: sched,
		Input:     queue,
		Log:       log,
		PlayerID:  player,
	}
}

// spawnMonster создает монстра в (x,y). Бросок кубика выбирает вариант.
func spawnMonster(w *ecs.World, cfg config.GameConfig, rng *rand.Rand, n, x, y int) {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, &component.Viewshed{Range: cfg.VisionRadius, Dirty: true})
	w.Add(id, component.Monster{})

	if rng.Intn(2) == 0 {
		w.Add(id, component.Name{Value: "Хитрый Гоблин"})
		w.Add(id, component.Renderable{Glyph: "g", FG: "text-green-500", Order: 5})
	} else {
		w.Add(id, component.Name{Value: "Свирепый Орк"})
		w.Add(id, component.Renderable{Glyph: "o", FG: "text-red-600", Order: 5})
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"entity":    id,
		"room":      n,
		"pos":       component.Position{X: x, Y: y},
	}).Debug("monster spawned")
}
