// Package fov вычисляет поле зрения рекурсивным shadowcasting'ом.
// Движок чистый: никаких побочных эффектов, карта видна только через
// предикат прозрачности. Одинаковые входы всегда дают одинаковый результат.
package fov

import "gloomdelve-server/internal/component"

// Мультипликаторы трансформации координат в 8 октантов.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Compute возвращает множество тайлов, видимых из origin в радиусе radius.
// opaque отвечает на вопрос "блокирует ли тайл (x,y) взгляд"; выход за
// границы карты вызывающий должен считать блокирующим.
//
// Гарантии:
//   - origin всегда в результате (в том числе при radius = 0 и при
//     origin вне карты - тогда результат состоит из одного origin);
//   - ни один тайл результата не дальше radius (евклидова метрика);
//   - тайлы за непрозрачной преградой в результат не попадают.
func Compute(origin component.Position, radius int, opaque func(x, y int) bool) component.TileSet {
	visible := component.TileSet{origin: true}

	// Слепой наблюдатель и origin внутри непрозрачного тайла (в том числе
	// за границей карты) видят только собственную клетку.
	if radius <= 0 || opaque(origin.X, origin.Y) {
		return visible
	}

	for i := 0; i < 8; i++ {
		castOctant(origin, 1, 1.0, 0.0, radius,
			octants[0][i], octants[1][i],
			octants[2][i], octants[3][i],
			opaque, visible)
	}
	return visible
}

// castOctant сканирует один октант ряд за рядом, сужая интервал
// наклонов [start, end] по мере столкновения со стенами.
func castOctant(origin component.Position, row int, start, end float64, radius, xx, xy, yx, yy int, opaque func(x, y int) bool, visible component.TileSet) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for dx+1 <= 0 {
			dx++

			// Наклоны левого и правого краев клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Локальные (dx,dy) -> глобальные координаты октанта
			x := origin.X + dx*xx + dy*xy
			y := origin.Y + dx*yx + dy*yy

			if dx*dx+dy*dy <= radiusSq {
				visible[component.Position{X: x, Y: y}] = true
			}

			if blocked {
				// Идем вдоль стены
				if opaque(x, y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else if opaque(x, y) && j < radius {
				// Наткнулись на стену: тень от нее сканируем рекурсивно
				blocked = true
				castOctant(origin, j+1, start, lSlope, radius, xx, xy, yx, yy, opaque, visible)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}
