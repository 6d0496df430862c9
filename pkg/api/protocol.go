package api

import "encoding/json"

// --- СЕРВЕР -> КЛИЕНТ ---

// Snapshot - полный снимок мира для рендер-коллаборатора.
// Рассылается после каждого изменения состояния симуляции
// (диспатч хода либо принятое действие игрока).
type Snapshot struct {
	// Type тип сообщения: INIT для первой отрисовки, дальше UPDATE.
	Type string `json:"type"`

	// Turn номер хода симуляции (количество выполненных диспатчей).
	Turn int `json:"turn"`

	// RunState текущее состояние планировщика: RUNNING или PAUSED.
	// Пока PAUSED, клиент может слать команды.
	RunState string `json:"runState"`

	// Grid размеры карты, чтобы клиент подготовил сетку.
	Grid GridMeta `json:"grid"`

	// Map тайлы, которые игрок исследовал (туман войны: видимые
	// рендерятся ярко, исследованные - тускло).
	Map []TileView `json:"map,omitempty"`

	// Entities сущности на видимых тайлах.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs новые записи журнала с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta - размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView - DTO одного тайла.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Env тип поверхности (floor, stone).
	Env string `json:"env"`

	// IsWall true для непроходимого препятствия.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл в текущем поле зрения игрока.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был виден.
	IsExplored bool `json:"isExplored"`
}

// EntityView - DTO игровой сущности.
type EntityView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Glyph string `json:"glyph"`
		FG    string `json:"fg"`
		BG    string `json:"bg,omitempty"`
		Order int    `json:"order,omitempty"`
	} `json:"render"`
}

// LogEntry - одна запись игрового журнала.
type LogEntry struct {
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, SPEECH
	Timestamp int64  `json:"timestamp"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Action название действия. Ядро распознает только MOVE;
	// всё остальное трактуется как "ignore and wait".
	Action string `json:"action"`

	// Payload данные действия, структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// DirectionPayload - payload команды MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // -1, 0, 1
	Dy int `json:"dy"` // -1, 0, 1
}
