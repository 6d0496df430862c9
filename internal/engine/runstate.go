package engine

// RunState определяет, продвигается ли симуляция в этом кадре или
// ждет ввода игрока. Значение живет ресурсом в мире, но мутирует его
// только планировщик.
type RunState uint8

const (
	// StateRunning - следующий вызов планировщика выполнит один диспатч
	// систем. Начальное состояние: самый первый кадр считает мир до
	// первого ожидания ввода.
	StateRunning RunState = iota

	// StatePaused - симуляция стоит и ждет распознанной команды игрока.
	StatePaused
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}
