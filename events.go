package baretask

import (
	"hash/fnv"
	"reflect"
)

// An EventBus delivers published values to callbacks subscribed to the
// published value's exact type.
//
// Subscriptions and publications are matched by a 64-bit hash of the
// type's identity; a dynamic type check at dispatch guards against hash
// collisions, so a collision can only suppress a delivery check, never
// invoke a callback with the wrong type.
//
// The EventBus is independent of the executors. It is not synchronized:
// an EventBus must not be used from more than one goroutine without
// external coordination.
//
// The zero value is an empty bus ready for use.
type EventBus struct {
	listeners map[uint64][]eventListener
}

type eventListener struct {
	typ  reflect.Type
	call func(v any)
}

// Subscribe registers fn to be called for every value of type T
// published on bus.
func Subscribe[T any](bus *EventBus, fn func(T)) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if bus.listeners == nil {
		bus.listeners = make(map[uint64][]eventListener)
	}
	id := typeID(typ)
	bus.listeners[id] = append(bus.listeners[id], eventListener{
		typ:  typ,
		call: func(v any) { fn(v.(T)) },
	})
}

// Publish delivers v to every callback subscribed to type T, in
// subscription order. Publishing a type nobody subscribed to does
// nothing.
func Publish[T any](bus *EventBus, v T) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	for _, l := range bus.listeners[typeID(typ)] {
		if l.typ == typ {
			l.call(v)
		}
	}
}

// typeID hashes a type's identity with FNV-1a.
func typeID(t reflect.Type) uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.PkgPath()))
	h.Write([]byte{'.'})
	h.Write([]byte(t.String()))
	return h.Sum64()
}
