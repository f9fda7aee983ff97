package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iComponentTable is the type-erased view of a componentTable[T].
type iComponentTable interface {
	Type() reflect.Type
	InsertAny(id EntityId, component any)
	Remove(id EntityId) bool
	Contains(id EntityId) bool
	GetAny(id EntityId) any
	Len() int
	Ids() iter.Seq[EntityId]
	Clear()

	// pointer returns the address of id's row, or nil.
	pointer(id EntityId) unsafe.Pointer
	// copyTo copies id's row into dst, which must point at a T.
	copyTo(id EntityId, dst unsafe.Pointer) bool
	// copyFrom inserts the T found at src for id.
	copyFrom(id EntityId, src unsafe.Pointer)
}
