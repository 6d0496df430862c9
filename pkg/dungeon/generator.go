// Package dungeon генерирует уровень: непересекающиеся прямоугольные
// комнаты, соединенные Г-образными коридорами. Ядро симуляции видит
// результат как готовый ресурс-карту плюс список комнат для спавна.
package dungeon

import (
	"math/rand"

	"gloomdelve-server/internal/config"
	"gloomdelve-server/internal/gamemap"
)

// Rect - комната (внешний прямоугольник; пол вырезается с отступом 1,
// поэтому стены между смежными комнатами сохраняются).
type Rect struct {
	X, Y, W, H int
}

// Center возвращает центр комнаты.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects проверяет пересечение с другой комнатой.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate строит карту по параметрам конфига. Вся случайность берется
// из переданного rng: одинаковый сид - одинаковый уровень.
// Гарантируется хотя бы одна комната (стартовая для игрока).
func Generate(cfg config.GameConfig, rng *rand.Rand) (*gamemap.Map, []Rect) {
	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	var rooms []Rect
	for i := 0; i < cfg.MaxRooms; i++ {
		w := randRange(rng, cfg.RoomMinSize, cfg.RoomMaxSize)
		h := randRange(rng, cfg.RoomMinSize, cfg.RoomMaxSize)
		x := randRange(rng, 1, cfg.MapWidth-w-1)
		y := randRange(rng, 1, cfg.MapHeight-h-1)

		room := Rect{X: x, Y: y, W: w, H: h}

		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)

		if len(rooms) > 0 {
			// Соединяем с предыдущей комнатой коридором; порядок
			// колен выбирается монеткой.
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := room.Center()

			if rng.Intn(2) == 0 {
				carveHCorridor(m, prevX, currX, prevY)
				carveVCorridor(m, prevY, currY, currX)
			} else {
				carveVCorridor(m, prevY, currY, prevX)
				carveHCorridor(m, prevX, currX, currY)
			}
		}
		rooms = append(rooms, room)
	}

	// Вырожденный случай: все попытки пересеклись. Вырезаем минимальную
	// стартовую комнату в центре, чтобы игроку было где появиться.
	if len(rooms) == 0 {
		fallback := Rect{X: cfg.MapWidth/2 - 3, Y: cfg.MapHeight/2 - 3, W: 5, H: 5}
		carveRoom(m, fallback)
		rooms = append(rooms, fallback)
	}

	return m, rooms
}

func carveRoom(m *gamemap.Map, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			m.CarveFloor(x, y)
		}
	}
}

func carveHCorridor(m *gamemap.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.CarveFloor(x, y)
	}
}

func carveVCorridor(m *gamemap.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.CarveFloor(x, y)
	}
}

func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}
