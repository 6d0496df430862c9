package engine

import (
	"os"
	"testing"

	"gloomdelve-server/internal/component"
	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/gamelog"
	"gloomdelve-server/internal/gamemap"
	"gloomdelve-server/internal/input"
	"gloomdelve-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// testRig - маленький мир для тестов планировщика: пустая комната 5x5,
// игрок в (2,2), монстр в (2,4), оба с радиусом зрения 8.
type testRig struct {
	world   *ecs.World
	queue   *input.Queue
	sched   *Scheduler
	log     *gamelog.Log
	gameMap *gamemap.Map
	player  ecs.EntityID
	monster ecs.EntityID
}

func newTestRig() *testRig {
	m := gamemap.New(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m.CarveFloor(x, y)
		}
	}

	w := ecs.NewWorld()
	log := gamelog.New()
	ecs.SetResource(w, m)
	ecs.SetResource(w, log)

	player := w.CreateEntity()
	w.Add(player, component.Position{X: 2, Y: 2})
	w.Add(player, &component.Viewshed{Range: 8, Dirty: true})
	w.Add(player, component.Player{})
	w.Add(player, component.Name{Value: "Герой"})
	ecs.SetResource(w, component.Position{X: 2, Y: 2})

	monster := w.CreateEntity()
	w.Add(monster, component.Position{X: 2, Y: 4})
	w.Add(monster, &component.Viewshed{Range: 8, Dirty: true})
	w.Add(monster, component.Monster{})
	w.Add(monster, component.Name{Value: "Свирепый Орк"})

	ecs.SetResource(w, StateRunning)

	queue := input.NewQueue(8)
	return &testRig{
		world:   w,
		queue:   queue,
		sched:   NewScheduler(w, queue, player),
		log:     log,
		gameMap: m,
		player:  player,
		monster: monster,
	}
}

// placePlayer телепортирует игрока, синхронно обновляя ресурс локации.
func (r *testRig) placePlayer(x, y int) {
	r.world.Add(r.player, component.Position{X: x, Y: y})
	ecs.SetResource(r.world, component.Position{X: x, Y: y})
}

func (r *testRig) playerPos() component.Position {
	pos, _ := component.PositionOf(r.world, r.player)
	return pos
}
