// Package gamemap содержит разделяемый ресурс "карта уровня".
// Карта строится генератором один раз на сессию; ядро симуляции только
// читает проходимость/прозрачность и выставляет флаги видимости.
package gamemap

// Tile - одна клетка карты.
type Tile struct {
	Wall     bool   `json:"isWall"`
	Env      string `json:"env"` // floor, stone
	Visible  bool   `json:"isVisible"`
	Explored bool   `json:"isExplored"`
}

// Map - сетка тайлов. Tiles индексируется как [y][x].
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// New создает карту, целиком заполненную камнем. Комнаты в ней
// вырезает генератор.
func New(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		row := make([]Tile, width)
		for x := range row {
			row[x] = Tile{Wall: true, Env: "stone"}
		}
		tiles[y] = row
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds проверяет, что координата лежит внутри карты.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At возвращает тайл по координатам. Вызывающий обязан проверить границы.
func (m *Map) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// IsOpaque отвечает, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Wall
}

// IsBlocked отвечает, блокирует ли клетка движение.
// Пока стены и прозрачность совпадают; разъедутся, когда появятся
// решетки и двери.
func (m *Map) IsBlocked(x, y int) bool {
	return m.IsOpaque(x, y)
}

// CarveFloor делает клетку проходимым полом.
func (m *Map) CarveFloor(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	t := &m.Tiles[y][x]
	t.Wall = false
	t.Env = "floor"
}

// ClearVisible сбрасывает флаги текущей видимости перед пересчетом,
// чтобы видимость не "залипала" после того, как игрок отвернулся.
// Explored при этом сохраняется - это туман войны.
func (m *Map) ClearVisible() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
}

// RevealTile помечает клетку видимой и исследованной.
// Координаты вне карты молча игнорируются.
func (m *Map) RevealTile(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	t := &m.Tiles[y][x]
	t.Visible = true
	t.Explored = true
}
