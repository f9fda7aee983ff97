package ecs

import (
	"reflect"
	"unsafe"
)

// EntityBuilder attaches components to a freshly reserved entity.
//
// The entity is invisible to queries until Build. Discard releases it along
// with every component attached so far, and is a no-op after Build, so the
// usual pattern is:
//
//	b := w.Create()
//	defer b.Discard()
//	b.With(Position{}).With(Velocity{})
//	id := b.Build()
type EntityBuilder struct {
	world     *World
	entity    EntityId
	inserted  []iComponentTable
	built     bool
	discarded bool
}

func (b *EntityBuilder) ensureOpen(op string) {
	if b.built || b.discarded {
		fatalf(ErrBuilderFinished, "%s on builder for %s", op, b.entity)
	}
	b.world.ensureMutable(op)
}

func (b *EntityBuilder) track(table iComponentTable) {
	for _, t := range b.inserted {
		if t == table {
			return
		}
	}
	b.inserted = append(b.inserted, table)
}

// With attaches component, given as T or *T. A later With of the same type
// replaces the earlier value.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	b.ensureOpen("With")

	t := componentTypeOf(component)
	table, ok := b.world.tables[t]
	if !ok {
		fatalf(ErrComponentNotRegistered, "%s", t)
	}
	table.InsertAny(b.entity, component)
	b.track(table)
	return b
}

// MaybeWith is With for a component that may be absent: a nil interface or a
// nil pointer is skipped.
func (b *EntityBuilder) MaybeWith(component any) *EntityBuilder {
	if component == nil {
		b.ensureOpen("MaybeWith")
		return b
	}
	if v := reflect.ValueOf(component); v.Kind() == reflect.Ptr && v.IsNil() {
		b.ensureOpen("MaybeWith")
		return b
	}
	return b.With(component)
}

func (b *EntityBuilder) insertRaw(table iComponentTable, src unsafe.Pointer) {
	b.ensureOpen("Spawn")
	table.copyFrom(b.entity, src)
	b.track(table)
}

// Build finalizes the entity and returns its id.
func (b *EntityBuilder) Build() EntityId {
	b.ensureOpen("Build")
	b.built = true
	b.world.entities.commit(b.entity)

	b.world.logger.Debug().
		Stringer("entity", b.entity).
		Int("components", len(b.inserted)).
		Msg("entity built")
	return b.entity
}

// Discard releases the entity and every component attached so far.
// It is a no-op once the builder has been built or discarded.
func (b *EntityBuilder) Discard() {
	if b.built || b.discarded {
		return
	}
	b.world.ensureMutable("Discard")
	b.discarded = true

	for _, table := range b.inserted {
		table.Remove(b.entity)
	}
	b.inserted = nil
	b.world.entities.release(b.entity)

	b.world.logger.Debug().Stringer("entity", b.entity).Msg("entity discarded")
}

// Entity returns the id reserved for this builder. Queries and IsAlive do not
// see it until Build.
func (b *EntityBuilder) Entity() EntityId {
	return b.entity
}

// Built reports whether Build has been called.
func (b *EntityBuilder) Built() bool {
	return b.built
}
