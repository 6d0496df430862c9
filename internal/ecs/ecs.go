package ecs

import "sort"

// EntityID - непрозрачный идентификатор сущности. Сама по себе сущность
// не несет никаких данных: всё состояние живет в компонентах.
type EntityID uint64

// NilEntity - нулевое значение; ни одна живая сущность его не получит.
const NilEntity EntityID = 0

// ComponentType - числовой ключ типа компонента. Константы объявляются
// в пакете component рядом с самими структурами.
type ComponentType uint8

// Component реализуется каждой структурой, которая хранится в мире.
type Component interface {
	Type() ComponentType
}

// World - реестр сущностей и хранилище компонентов.
// Компоненты лежат в разреженных индексах "тип -> (сущность -> данные)",
// join по нескольким типам - это пересечение индексов.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	resources  map[resourceKey]any
}

func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		resources:  make(map[resourceKey]any),
	}
}

// CreateEntity выдает новый ID и помечает сущность живой.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Alive сообщает, жива ли сущность.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add прикрепляет компонент к сущности (или заменяет существующий).
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	store := w.components[t]
	if store == nil {
		store = make(map[EntityID]Component)
		w.components[t] = store
	}
	store[id] = c
}

// Get возвращает компонент типа t или nil. Отсутствие компонента -
// нормальная ситуация, а не ошибка.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Has проверяет наличие компонента.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Remove снимает компонент с сущности.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Query возвращает живые сущности, имеющие ВСЕ перечисленные типы
// компонентов. Порядок стабильный (по возрастанию ID), но логика систем
// не должна на него опираться для корректности.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}

	// Кандидаты - самый маленький индекс, остальные только фильтруют.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}

	var result []EntityID
outer:
	for id := range w.components[smallest] {
		if !w.alive[id] {
			continue
		}
		for _, t := range types {
			if t == smallest {
				continue
			}
			if w.Get(id, t) == nil {
				continue outer
			}
		}
		result = append(result, id)
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
