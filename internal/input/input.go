// Package input - коллаборатор ввода: не больше одного дискретного
// события команды за кадр, либо ни одного. Никаких коллбеков и
// корутинного аппарата - планировщик сам опрашивает источник.
package input

// Kind - распознанный класс команды.
type Kind uint8

const (
	// KindUnknown - нераспознанный ввод. Планировщик его игнорирует
	// (политика "ignore and wait"), симуляция не продвигается.
	KindUnknown Kind = iota
	// KindMove - команда движения на соседнюю клетку.
	KindMove
)

// Command - одно событие ввода.
type Command struct {
	Kind   Kind
	Dx, Dy int // только для KindMove; каждый в диапазоне -1..1
}

// Source - то, что планировщик опрашивает раз в кадр.
type Source interface {
	// Poll неблокирующе забирает одно событие. Отсутствие события -
	// нормальный немедленный результат, не ожидание.
	Poll() (Command, bool)
}

// Queue - буферизованная очередь команд. Push зовется из горутины
// чтения сокета, Poll - из цикла хоста; канал и есть граница потоков.
type Queue struct {
	ch chan Command
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{ch: make(chan Command, size)}
}

// Push кладет команду без блокировки. При переполненном буфере команда
// отбрасывается и возвращается false.
func (q *Queue) Push(c Command) bool {
	select {
	case q.ch <- c:
		return true
	default:
		return false
	}
}

// Poll забирает одну команду без блокировки.
func (q *Queue) Poll() (Command, bool) {
	select {
	case c := <-q.ch:
		return c, true
	default:
		return Command{}, false
	}
}
