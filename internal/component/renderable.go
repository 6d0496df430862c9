package component

import "gloomdelve-server/internal/ecs"

const CRenderable ecs.ComponentType = 2

// Renderable - чисто презентационные данные (клиент сам решает, как
// их рисовать). Ядро их не интерпретирует.
type Renderable struct {
	Glyph string `json:"glyph"` // символ отображения (@ - герой, g - гоблин)
	FG    string `json:"fg"`
	BG    string `json:"bg,omitempty"`
	Order int    `json:"order,omitempty"` // порядок отрисовки при наложении
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// RenderableOf возвращает визуальные данные сущности, если они есть.
func RenderableOf(w *ecs.World, id ecs.EntityID) (Renderable, bool) {
	c := w.Get(id, CRenderable)
	if c == nil {
		return Renderable{}, false
	}
	return c.(Renderable), true
}
