package component

import "gloomdelve-server/internal/ecs"

const CViewshed ecs.ComponentType = 3

// TileSet - множество видимых тайлов.
type TileSet map[Position]bool

// Contains проверяет членство координаты в множестве.
func (s TileSet) Contains(p Position) bool {
	return s[p]
}

// Viewshed - поле зрения актора: вычисленное множество видимых тайлов
// плюс параметры пересчета. Dirty ставится при любом изменении позиции,
// радиуса или прозрачности карты и снимается ТОЛЬКО системой видимости.
//
// Хранится по указателю: система видимости мутирует его на месте.
type Viewshed struct {
	VisibleTiles TileSet
	Range        int
	Dirty        bool
}

func (*Viewshed) Type() ecs.ComponentType { return CViewshed }

// ViewshedOf возвращает поле зрения сущности или nil.
func ViewshedOf(w *ecs.World, id ecs.EntityID) *Viewshed {
	c := w.Get(id, CViewshed)
	if c == nil {
		return nil
	}
	return c.(*Viewshed)
}
