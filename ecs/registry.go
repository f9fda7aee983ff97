package ecs

import (
	"reflect"
)

// Registrar is anything component types can be registered with: a reusable
// ComponentRegistry or a live World.
type Registrar interface {
	registerTable(t reflect.Type, factory func() iComponentTable)
}

// ComponentRegistry collects component table factories ahead of World creation.
// The same registry can seed any number of independent Worlds.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentTable
	order     []reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentTable),
	}
}

// RegisterComponent registers component type T. Registering the same type
// twice is a no-op. Pointer, map, channel, function and interface types are
// rejected, as is EntityId (it is the identity shape, not a component).
func RegisterComponent[T any](r Registrar) {
	t := reflect.TypeFor[T]()
	validateComponentType(t)
	r.registerTable(t, func() iComponentTable {
		return newComponentTable[T]()
	})
}

func (r *ComponentRegistry) registerTable(t reflect.Type, factory func() iComponentTable) {
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = factory
	r.order = append(r.order, t)
}

// Types returns the registered component types in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	return append([]reflect.Type(nil), r.order...)
}

func validateComponentType(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		fatalf(ErrInvalidComponent, "%s: components cannot be pointers, maps, channels, functions or interfaces", t)
	}
	if t == entityIdType {
		fatalf(ErrInvalidComponent, "EntityId cannot be registered as a component")
	}
}

var entityIdType = reflect.TypeFor[EntityId]()

// componentTypeOf resolves the component type of a value passed as either T or *T.
func componentTypeOf(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		fatalf(ErrInvalidComponent, "nil component")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
