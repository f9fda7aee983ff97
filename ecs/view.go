package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

type fieldKind uint8

const (
	// fieldIdentity receives the entity id itself
	fieldIdentity fieldKind = iota
	// fieldWrite receives a pointer to the stored component
	fieldWrite
	// fieldRead receives a copy of the stored component
	fieldRead
)

type shapeField struct {
	name     string
	kind     fieldKind
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// View is a compiled query shape over a World.
//
// The shape S is a struct. Each field states one requirement:
//
//	ecs.EntityId                the entity itself, always satisfied
//	*C                          exclusive access to the stored C
//	C                           a read-only copy of the stored C
//	*C `ecs:"optional"`         *C when present, nil otherwise
//
// Fields may be embedded or named. An entity satisfies S when it is alive and
// has every non-optional component. Naming the same component type twice is
// only allowed when both fields are read-only copies.
type View[S any] struct {
	world  *World
	fields []shapeField

	tables     []iComponentTable
	resolvedAt int
}

// NewView compiles S against w. It panics with ErrInvalidShape when S is not
// a valid shape and with ErrBorrowConflict when S aliases a mutable component.
func NewView[S any](w *World) *View[S] {
	structType := reflect.TypeFor[S]()
	if structType.Kind() != reflect.Struct {
		fatalf(ErrInvalidShape, "%s: view shape must be a struct", structType)
	}

	fields := make([]shapeField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		fields = append(fields, compileField(structType, structType.Field(i)))
	}
	checkBorrows(structType, fields)

	return &View[S]{
		world:      w,
		fields:     fields,
		tables:     make([]iComponentTable, len(fields)),
		resolvedAt: -1,
	}
}

func compileField(shape reflect.Type, field reflect.StructField) shapeField {
	if !field.IsExported() {
		fatalf(ErrInvalidShape, "%s.%s: shape fields must be exported", shape, field.Name)
	}

	sf := shapeField{
		name:   field.Name,
		offset: field.Offset,
	}

	switch tag := field.Tag.Get("ecs"); tag {
	case "":
	case "optional":
		if field.Anonymous {
			fatalf(ErrInvalidShape, "%s.%s: embedded fields cannot be optional", shape, field.Name)
		}
		sf.optional = true
	default:
		fatalf(ErrInvalidShape, "%s.%s: invalid ecs tag value %q (only \"optional\" is supported)", shape, field.Name, tag)
	}

	fieldType := field.Type
	switch {
	case fieldType == entityIdType:
		sf.kind = fieldIdentity
		sf.typ = entityIdType
		if sf.optional {
			fatalf(ErrInvalidShape, "%s.%s: the entity id cannot be optional", shape, field.Name)
		}
	case fieldType.Kind() == reflect.Ptr:
		sf.kind = fieldWrite
		sf.typ = fieldType.Elem()
	default:
		sf.kind = fieldRead
		sf.typ = fieldType
		if sf.optional {
			fatalf(ErrInvalidShape, "%s.%s: only pointer fields can be optional", shape, field.Name)
		}
	}

	if sf.kind != fieldIdentity {
		switch sf.typ.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
			fatalf(ErrInvalidShape, "%s.%s: %s is not a component type", shape, field.Name, fieldType)
		}
		if sf.typ == entityIdType {
			fatalf(ErrInvalidShape, "%s.%s: use ecs.EntityId, not *ecs.EntityId", shape, field.Name)
		}
	}
	return sf
}

func checkBorrows(shape reflect.Type, fields []shapeField) {
	type borrows struct{ reads, writes int }
	seen := make(map[reflect.Type]*borrows, len(fields))
	for _, f := range fields {
		if f.kind == fieldIdentity {
			continue
		}
		b, ok := seen[f.typ]
		if !ok {
			b = &borrows{}
			seen[f.typ] = b
		}
		if f.kind == fieldWrite {
			b.writes++
		} else {
			b.reads++
		}
		if b.writes > 1 || (b.writes == 1 && b.reads > 0) {
			fatalf(ErrBorrowConflict, "%s borrows %s mutably more than once or both mutably and immutably", shape, f.typ)
		}
	}
}

// resolve binds fields to tables registered since the last call.
func (v *View[S]) resolve() {
	if v.resolvedAt == v.world.registrations {
		return
	}
	for i, f := range v.fields {
		if f.kind == fieldIdentity {
			continue
		}
		v.tables[i] = v.world.tables[f.typ]
	}
	v.resolvedAt = v.world.registrations
}

// satisfied checks component presence only; liveness is the caller's job.
func (v *View[S]) satisfied(id EntityId) bool {
	for i := range v.fields {
		f := &v.fields[i]
		if f.kind == fieldIdentity || f.optional {
			continue
		}
		table := v.tables[i]
		if table == nil || !table.Contains(id) {
			return false
		}
	}
	return true
}

// populate writes the result for id into the S at ptr. It stops at the first
// missing required component and returns false.
func (v *View[S]) populate(id EntityId, ptr unsafe.Pointer) bool {
	for i := range v.fields {
		f := &v.fields[i]
		fieldPtr := unsafe.Add(ptr, f.offset)
		table := v.tables[i]

		switch f.kind {
		case fieldIdentity:
			*(*EntityId)(fieldPtr) = id

		case fieldWrite:
			var component unsafe.Pointer
			if table != nil {
				component = table.pointer(id)
			}
			if component == nil && !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = component

		case fieldRead:
			if table == nil || !table.copyTo(id, fieldPtr) {
				return false
			}
		}
	}
	return true
}

// Matches reports whether id is alive and satisfies S.
func (v *View[S]) Matches(id EntityId) bool {
	if !v.world.entities.isAlive(id) {
		return false
	}
	v.resolve()
	return v.satisfied(id)
}

// Fill populates the provided struct pointer with component data for the given entity
// Returns false if the entity is dead or missing any required components
func (v *View[S]) Fill(id EntityId, ptr *S) bool {
	if !v.world.entities.isAlive(id) {
		return false
	}
	v.resolve()
	return v.populate(id, unsafe.Pointer(ptr))
}

// Get returns the populated shape for id.
func (v *View[S]) Get(id EntityId) (S, bool) {
	var result S
	if !v.Fill(id, &result) {
		var zero S
		return zero, false
	}
	return result, true
}

// Iter returns an iterator over all live entities that satisfy S, in slot order.
func (v *View[S]) Iter() iter.Seq2[EntityId, S] {
	return v.Filter(nil)
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[S]) Values() iter.Seq[S] {
	return values(v.Iter())
}

// Filter is Iter restricted to the entities accepted by filter.
func (v *View[S]) Filter(filter EntityFilter) iter.Seq2[EntityId, S] {
	return func(yield func(EntityId, S) bool) {
		w := v.world
		w.beginIteration()
		defer w.endIteration()
		v.resolve()

		var result S
		resultPtr := unsafe.Pointer(&result)

		for id := range w.entities.all() {
			if filter != nil && !filter.Filter(id) {
				continue
			}
			if !v.populate(id, resultPtr) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Entries is Iter restricted up front to ids, visited in the given order.
func (v *View[S]) Entries(ids []EntityId) iter.Seq2[EntityId, S] {
	return func(yield func(EntityId, S) bool) {
		w := v.world
		w.beginIteration()
		defer w.endIteration()
		v.resolve()

		var result S
		resultPtr := unsafe.Pointer(&result)

		for _, id := range ids {
			if !w.entities.isAlive(id) || !v.populate(id, resultPtr) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Combinations yields every unordered pair of distinct matching entities.
// Within a pair the first entity precedes the second in slot order.
func (v *View[S]) Combinations() iter.Seq2[S, S] {
	return func(yield func(S, S) bool) {
		w := v.world
		w.beginIteration()
		defer w.endIteration()
		v.resolve()

		matched := make([]EntityId, 0, 16)
		for id := range w.entities.all() {
			if v.satisfied(id) {
				matched = append(matched, id)
			}
		}

		var a, b S
		aPtr, bPtr := unsafe.Pointer(&a), unsafe.Pointer(&b)
		for i := 0; i < len(matched); i++ {
			for j := i + 1; j < len(matched); j++ {
				v.populate(matched[i], aPtr)
				v.populate(matched[j], bPtr)
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

// Spawn creates a new entity from a shape value. Every non-nil pointer field
// and every value field becomes a component; the EntityId field is ignored.
func (v *View[S]) Spawn(data S) EntityId {
	b := v.world.Create()
	defer b.Discard()
	v.resolve()

	structPtr := unsafe.Pointer(&data)
	for i := range v.fields {
		f := &v.fields[i]
		fieldPtr := unsafe.Add(structPtr, f.offset)

		var src unsafe.Pointer
		switch f.kind {
		case fieldIdentity:
			continue
		case fieldWrite:
			src = *(*unsafe.Pointer)(fieldPtr)
			if src == nil {
				if !f.optional {
					fatalf(ErrInvalidComponent, "required component %s is nil in View.Spawn", f.typ)
				}
				continue
			}
		case fieldRead:
			src = fieldPtr
		}

		table := v.tables[i]
		if table == nil {
			fatalf(ErrComponentNotRegistered, "%s", f.typ)
		}
		b.insertRaw(table, src)
	}

	return b.Build()
}
