package ecs

import (
	"iter"
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

const (
	tableBlockSize = 64
)

// componentTable stores at most one T per entity.
// Rows live in fixed blocks so a *T handed to a caller stays valid while the
// table grows; freed rows are recycled.
type componentTable[T any] struct {
	typ      reflect.Type
	index    *intmap.Map[uint32, int]
	blocks   []*[tableBlockSize]T
	owners   []EntityId
	freeRows []int
	nextRow  int
}

func newComponentTable[T any]() *componentTable[T] {
	return &componentTable[T]{
		typ:   reflect.TypeFor[T](),
		index: intmap.New[uint32, int](64),
	}
}

func (ct *componentTable[T]) Type() reflect.Type {
	return ct.typ
}

// row returns the row owned by id, or -1.
func (ct *componentTable[T]) row(id EntityId) int {
	r, ok := ct.index.Get(id.Index())
	if !ok || ct.owners[r] != id {
		return -1
	}
	return r
}

func (ct *componentTable[T]) slot(r int) *T {
	return &ct.blocks[r/tableBlockSize][r%tableBlockSize]
}

// insert adds or replaces the row for id.
func (ct *componentTable[T]) insert(id EntityId, value T) *T {
	// a row left behind by an older generation of the slot is reused in place
	if r, ok := ct.index.Get(id.Index()); ok {
		ct.owners[r] = id
		p := ct.slot(r)
		*p = value
		return p
	}

	var r int
	if n := len(ct.freeRows); n > 0 {
		r = ct.freeRows[n-1]
		ct.freeRows = ct.freeRows[:n-1]
	} else {
		r = ct.nextRow
		ct.nextRow++
		if r/tableBlockSize >= len(ct.blocks) {
			ct.blocks = append(ct.blocks, new([tableBlockSize]T))
		}
		ct.owners = append(ct.owners, NilEntity)
	}

	ct.owners[r] = id
	ct.index.Put(id.Index(), r)
	p := ct.slot(r)
	*p = value
	return p
}

func (ct *componentTable[T]) remove(id EntityId) bool {
	r := ct.row(id)
	if r < 0 {
		return false
	}

	var zero T
	*ct.slot(r) = zero
	ct.owners[r] = NilEntity
	ct.index.Del(id.Index())
	ct.freeRows = append(ct.freeRows, r)
	return true
}

func (ct *componentTable[T]) lookup(id EntityId) (*T, bool) {
	r := ct.row(id)
	if r < 0 {
		return nil, false
	}
	return ct.slot(r), true
}

// get trusts the caller to have checked presence.
func (ct *componentTable[T]) get(id EntityId) *T {
	r := ct.row(id)
	if r < 0 {
		fatalf(ErrComponentNotFound, "%s on entity %s", ct.typ, id)
	}
	return ct.slot(r)
}

func (ct *componentTable[T]) contains(id EntityId) bool {
	return ct.row(id) >= 0
}

func (ct *componentTable[T]) len() int {
	return ct.index.Len()
}

func (ct *componentTable[T]) InsertAny(id EntityId, component any) {
	switch v := component.(type) {
	case T:
		ct.insert(id, v)
	case *T:
		if v == nil {
			fatalf(ErrInvalidComponent, "nil *%s inserted for entity %s", ct.typ, id)
		}
		ct.insert(id, *v)
	default:
		fatalf(ErrInvalidComponent, "%T inserted into %s table", component, ct.typ)
	}
}

func (ct *componentTable[T]) Remove(id EntityId) bool {
	return ct.remove(id)
}

func (ct *componentTable[T]) Contains(id EntityId) bool {
	return ct.contains(id)
}

// GetAny returns a *T for id, or nil.
func (ct *componentTable[T]) GetAny(id EntityId) any {
	p, ok := ct.lookup(id)
	if !ok {
		return nil
	}
	return p
}

func (ct *componentTable[T]) Len() int {
	return ct.len()
}

// Ids yields the owners of all occupied rows in row order.
func (ct *componentTable[T]) Ids() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for r := 0; r < ct.nextRow; r++ {
			if ct.owners[r] == NilEntity {
				continue
			}
			if !yield(ct.owners[r]) {
				return
			}
		}
	}
}

func (ct *componentTable[T]) Clear() {
	ct.index.Clear()
	ct.blocks = nil
	ct.owners = nil
	ct.freeRows = nil
	ct.nextRow = 0
}

func (ct *componentTable[T]) pointer(id EntityId) unsafe.Pointer {
	r := ct.row(id)
	if r < 0 {
		return nil
	}
	return unsafe.Pointer(ct.slot(r))
}

func (ct *componentTable[T]) copyTo(id EntityId, dst unsafe.Pointer) bool {
	r := ct.row(id)
	if r < 0 {
		return false
	}
	*(*T)(dst) = *ct.slot(r)
	return true
}

func (ct *componentTable[T]) copyFrom(id EntityId, src unsafe.Pointer) {
	ct.insert(id, *(*T)(src))
}
