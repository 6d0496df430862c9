package systems

import (
	"testing"

	"gloomdelve-server/internal/component"
)

func TestVisibility_RecomputesDirtyViewshed(t *testing.T) {
	world, _, _ := newOpenWorld(20, 20)

	e := world.CreateEntity()
	world.Add(e, component.Position{X: 10, Y: 10})
	world.Add(e, &component.Viewshed{Range: 5, Dirty: true})

	RunVisibility(world)

	vs := component.ViewshedOf(world, e)
	if vs.Dirty {
		t.Error("Dirty must be cleared after recompute")
	}
	if !vs.VisibleTiles.Contains(component.Position{X: 10, Y: 10}) {
		t.Error("own tile must be in the visible set")
	}
	if !vs.VisibleTiles.Contains(component.Position{X: 10, Y: 7}) {
		t.Error("open tile at distance 3 must be visible with range 5")
	}
}

func TestVisibility_SkipsCleanViewshed(t *testing.T) {
	world, _, _ := newOpenWorld(10, 10)

	e := world.CreateEntity()
	world.Add(e, component.Position{X: 5, Y: 5})
	world.Add(e, &component.Viewshed{Range: 5, Dirty: false})

	RunVisibility(world)

	if component.ViewshedOf(world, e).VisibleTiles != nil {
		t.Error("clean viewshed must not be recomputed")
	}
}

func TestVisibility_PlayerRevealsMap(t *testing.T) {
	world, m, _ := newOpenWorld(20, 20)

	player := world.CreateEntity()
	world.Add(player, component.Position{X: 5, Y: 5})
	world.Add(player, &component.Viewshed{Range: 3, Dirty: true})
	world.Add(player, component.Player{})

	// Залипшая видимость из "прошлого хода"
	m.At(19, 19).Visible = true

	RunVisibility(world)

	if !m.At(5, 5).Visible || !m.At(5, 5).Explored {
		t.Error("player's tile must be marked visible and explored")
	}
	if !m.At(5, 3).Visible {
		t.Error("tile in range must be marked visible")
	}
	if m.At(19, 19).Visible {
		t.Error("stale visibility must be cleared before applying the new set")
	}
}

func TestVisibility_MonsterDoesNotTouchMap(t *testing.T) {
	world, m, _ := newOpenWorld(10, 10)

	monster := world.CreateEntity()
	world.Add(monster, component.Position{X: 5, Y: 5})
	world.Add(monster, &component.Viewshed{Range: 5, Dirty: true})
	world.Add(monster, component.Monster{})

	RunVisibility(world)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if m.At(x, y).Visible {
				t.Fatalf("monster recompute must not set map visibility at (%d,%d)", x, y)
			}
		}
	}
	if component.ViewshedOf(world, monster).Dirty {
		t.Error("monster viewshed must still be recomputed")
	}
}

func TestVisibility_ViewshedWithoutPositionPanics(t *testing.T) {
	world, _, _ := newOpenWorld(5, 5)

	e := world.CreateEntity()
	world.Add(e, &component.Viewshed{Range: 5, Dirty: true})

	defer func() {
		if recover() == nil {
			t.Error("Viewshed without Position is a data-integrity violation and must panic")
		}
	}()
	RunVisibility(world)
}

func TestVisibility_WallShadowsMapTiles(t *testing.T) {
	world, m, _ := newOpenWorld(11, 11)
	m.At(5, 7).Wall = true

	player := world.CreateEntity()
	world.Add(player, component.Position{X: 5, Y: 5})
	world.Add(player, &component.Viewshed{Range: 8, Dirty: true})
	world.Add(player, component.Player{})

	RunVisibility(world)

	if !m.At(5, 7).Visible {
		t.Error("the wall itself must be lit")
	}
	if m.At(5, 9).Visible {
		t.Error("tile behind the wall must stay dark")
	}
}
