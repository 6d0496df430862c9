package component

import "gloomdelve-server/internal/ecs"

const CName ecs.ComponentType = 6

// Name - имя для нарратива и диагностики. Поведения не несет.
type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }

// AnonymousLabel используется, когда у сущности нет имени.
const AnonymousLabel = "Нечто безымянное"

// DisplayName возвращает имя сущности или анонимную метку.
// Отсутствие имени - нормальная ситуация, не ошибка.
func DisplayName(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, CName)
	if c == nil {
		return AnonymousLabel
	}
	return c.(Name).Value
}
