package systems

import (
	"os"
	"testing"

	"gloomdelve-server/internal/ecs"
	"gloomdelve-server/internal/gamelog"
	"gloomdelve-server/internal/gamemap"
	"gloomdelve-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Глобальный логгер нужен системам до любых тестов
	logger.Init()
	os.Exit(m.Run())
}

// newOpenWorld строит мир с пустой комнатой w*h и обязательными ресурсами.
func newOpenWorld(w, h int) (*ecs.World, *gamemap.Map, *gamelog.Log) {
	m := gamemap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.CarveFloor(x, y)
		}
	}

	world := ecs.NewWorld()
	log := gamelog.New()
	ecs.SetResource(world, m)
	ecs.SetResource(world, log)
	return world, m, log
}
