package ecs

import (
	"fmt"
	"reflect"
)

// Ресурсы - синглтоны, привязанные к типу Go, а не к сущности
// (карта, позиция игрока, состояние хода). Все ресурсы ядра создаются
// до запуска систем, поэтому чтение незаписанного ресурса - это
// ошибка программиста, а не рантайм-условие.

type resourceKey = reflect.Type

// SetResource записывает (или заменяет) ресурс типа T.
func SetResource[T any](w *World, v T) {
	w.resources[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// GetResource возвращает ресурс типа T и признак его наличия.
func GetResource[T any](w *World) (T, bool) {
	v, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustResource возвращает ресурс типа T. Паникует, если ресурс не был
// записан: по контракту ядра это недостижимое состояние.
func MustResource[T any](w *World) T {
	v, ok := GetResource[T](w)
	if !ok {
		panic(fmt.Sprintf("ecs: resource %v is not set", reflect.TypeOf((*T)(nil)).Elem()))
	}
	return v
}
