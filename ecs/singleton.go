package ecs

import (
	"reflect"
	"unsafe"
)

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// AddSingleton stores a world-global value, given as T or *T. Adding a type that
// already exists overwrites the stored value in place, so pointers handed out
// earlier stay valid.
func (w *World) AddSingleton(value any) {
	t := componentTypeOf(value)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fatalf(ErrInvalidComponent, "nil *%s singleton", t)
		}
		v = v.Elem()
	}

	if entry, ok := w.singletons[t]; ok {
		entry.value.Elem().Set(v)
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	w.singletons[t] = &singletonEntry{
		typ:     t,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
	w.singletonOrder = append(w.singletonOrder, t)

	w.logger.Debug().Str("singleton", t.String()).Msg("singleton added")
}

// SingletonOf returns a pointer to the singleton of type t, or nil.
func (w *World) SingletonOf(t reflect.Type) any {
	entry, ok := w.singletons[t]
	if !ok {
		return nil
	}
	return entry.value.Interface()
}

// SingletonTypes lists singleton types in insertion order.
func (w *World) SingletonTypes() []reflect.Type {
	return append([]reflect.Type(nil), w.singletonOrder...)
}

// Singleton provides efficient access to a single component instance
// that is not associated with any entity. Use this for global game state,
// configuration, or other singleton data.
type Singleton[T any] struct {
	world        *World
	componentPtr unsafe.Pointer
}

// NewSingleton creates a new Singleton accessor for w. If the singleton does
// not exist yet it is created from initializer, or from the zero value.
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()
	if _, ok := w.singletons[t]; !ok {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		w.AddSingleton(&value)
	}

	return &Singleton[T]{
		world:        w,
		componentPtr: w.singletons[t].dataPtr,
	}
}

// Init binds the Singleton to w.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(w *World) {
	s.world = w
	s.updateCache()
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added to the world.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return (*T)(s.componentPtr)
}

func (s *Singleton[T]) updateCache() {
	if s.world == nil {
		return
	}
	if entry, ok := s.world.singletons[reflect.TypeFor[T]()]; ok {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}

// Exists returns true if the singleton component has been added to the world
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

// ReadSingleton points out, a **T, at the stored T singleton and reports
// whether it exists.
func (w *World) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.IsNil() || target.Elem().Kind() != reflect.Ptr {
		fatalf(ErrInvalidComponent, "ReadSingleton needs a **T, got %T", out)
	}

	entry, ok := w.singletons[target.Elem().Type().Elem()]
	if !ok {
		return false
	}
	target.Elem().Set(entry.value)
	return true
}
