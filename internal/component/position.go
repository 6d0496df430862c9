package component

import "gloomdelve-server/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position - координаты тайла. Инвариант: всегда внутри границ карты
// (за это отвечают спавн и обработчик движения).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquaredTo - квадрат расстояния (int), чтобы сравнивать без корней.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// PositionOf возвращает позицию сущности. Второе значение false,
// если компонента нет.
func PositionOf(w *ecs.World, id ecs.EntityID) (Position, bool) {
	c := w.Get(id, CPosition)
	if c == nil {
		return Position{}, false
	}
	return c.(Position), true
}
