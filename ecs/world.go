package ecs

import (
	"iter"
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Option configures a World.
type Option func(*worldConfig)

type worldConfig struct {
	logger      zerolog.Logger
	capacity    int
	maxEntities uint32
}

// WithLogger sets the logger used for lifecycle debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *worldConfig) {
		c.logger = logger
	}
}

// WithEntityCapacity pre-sizes the entity slot arrays.
func WithEntityCapacity(n int) Option {
	return func(c *worldConfig) {
		c.capacity = n
	}
}

// WithMaxEntities caps the number of entity slots. Allocating past the cap
// panics with ErrCapacityExhausted.
func WithMaxEntities(n uint32) Option {
	return func(c *worldConfig) {
		c.maxEntities = n
	}
}

// World owns every entity and every component table.
// A World is not safe for concurrent use.
type World struct {
	entities entityAllocator
	tables   map[reflect.Type]iComponentTable
	order    []iComponentTable

	// bumped whenever a table is added so compiled views can re-resolve
	registrations int

	views          map[reflect.Type]any
	singletons     map[reflect.Type]*singletonEntry
	singletonOrder []reflect.Type

	iterating int
	logger    zerolog.Logger
}

// NewWorld creates a World seeded with the component types in registry.
// registry may be nil; types can also be registered on the World directly.
func NewWorld(registry *ComponentRegistry, opts ...Option) *World {
	cfg := worldConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &World{
		entities:   newEntityAllocator(cfg.capacity, cfg.maxEntities),
		tables:     make(map[reflect.Type]iComponentTable),
		views:      make(map[reflect.Type]any),
		singletons: make(map[reflect.Type]*singletonEntry),
		logger:     cfg.logger,
	}

	if registry != nil {
		for _, t := range registry.order {
			w.registerTable(t, registry.factories[t])
		}
	}

	return w
}

func (w *World) registerTable(t reflect.Type, factory func() iComponentTable) {
	if _, ok := w.tables[t]; ok {
		return
	}
	w.ensureMutable("RegisterComponent")

	table := factory()
	w.tables[t] = table
	w.order = append(w.order, table)
	w.registrations++

	w.logger.Debug().
		Str("component", t.String()).
		Int("tables", len(w.order)).
		Msg("component registered")
}

// lookupTable is the only place a type-erased table is downcast.
func lookupTable[T any](w *World) (*componentTable[T], bool) {
	table, ok := w.tables[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return table.(*componentTable[T]), true
}

func tableOf[T any](w *World) *componentTable[T] {
	table, ok := lookupTable[T](w)
	if !ok {
		fatalf(ErrComponentNotRegistered, "%s", reflect.TypeFor[T]())
	}
	return table
}

func (w *World) ensureMutable(op string) {
	if w.iterating > 0 {
		fatalf(ErrStructuralMutation, "%s called while %d iteration(s) in progress", op, w.iterating)
	}
}

func (w *World) ensureAlive(id EntityId) {
	if !w.entities.isAlive(id) {
		fatalf(ErrEntityNotAlive, "entity %s", id)
	}
}

func (w *World) beginIteration() {
	w.iterating++
}

func (w *World) endIteration() {
	w.iterating--
}

func (w *World) allocate() EntityId {
	id, ok := w.entities.allocate()
	if !ok {
		w.logger.Error().
			Int("entities", w.entities.len()).
			Int("slots", w.entities.cap()).
			Msg("entity capacity exhausted")
		fatalf(ErrCapacityExhausted, "%d slots in use", w.entities.cap())
	}
	return id
}

// Create reserves a new entity and returns a builder for its components.
// The entity is released again unless Build is called; see EntityBuilder.
func (w *World) Create() *EntityBuilder {
	w.ensureMutable("Create")
	return &EntityBuilder{
		world:  w,
		entity: w.allocate(),
	}
}

// Spawn creates an entity with the given components in one step.
func (w *World) Spawn(components ...any) EntityId {
	b := w.Create()
	defer b.Discard()

	for _, component := range components {
		b.With(component)
	}
	return b.Build()
}

// Construct runs fn against a fresh builder. The entity is built when fn
// returns nil and released when fn returns an error or panics.
func (w *World) Construct(fn func(b *EntityBuilder) error) (EntityId, error) {
	b := w.Create()
	defer b.Discard()

	if err := fn(b); err != nil {
		return NilEntity, eris.Wrapf(err, "construct entity %s", b.Entity())
	}
	return b.Build(), nil
}

// Destroy removes every component of id and releases it. Destroying a dead
// entity is a no-op and returns false.
func (w *World) Destroy(id EntityId) bool {
	w.ensureMutable("Destroy")
	if !w.entities.isAlive(id) {
		return false
	}

	w.purge(id)
	w.entities.release(id)

	w.logger.Debug().Stringer("entity", id).Msg("entity destroyed")
	return true
}

func (w *World) purge(id EntityId) {
	for _, table := range w.order {
		table.Remove(id)
	}
}

// IsAlive reports whether id names a live entity.
func (w *World) IsAlive(id EntityId) bool {
	return w.entities.isAlive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.len()
}

// Entities yields all live entities in slot order.
func (w *World) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		w.beginIteration()
		defer w.endIteration()

		for id := range w.entities.all() {
			if !yield(id) {
				return
			}
		}
	}
}

// InsertComponent adds or replaces a component given as T or *T.
func (w *World) InsertComponent(id EntityId, component any) {
	w.ensureMutable("Insert")
	w.ensureAlive(id)
	w.insertAny(id, component)
}

func (w *World) insertAny(id EntityId, component any) {
	t := componentTypeOf(component)
	table, ok := w.tables[t]
	if !ok {
		fatalf(ErrComponentNotRegistered, "%s", t)
	}
	table.InsertAny(id, component)
}

// RemoveComponent removes the component of type compType from id.
func (w *World) RemoveComponent(id EntityId, compType reflect.Type) bool {
	w.ensureMutable("Remove")
	table, ok := w.tables[compType]
	if !ok {
		return false
	}
	return table.Remove(id)
}

// ComponentOf returns a pointer to id's component of type compType, or nil.
func (w *World) ComponentOf(id EntityId, compType reflect.Type) any {
	table, ok := w.tables[compType]
	if !ok {
		return nil
	}
	return table.GetAny(id)
}

// HasComponent checks if an entity has a specific component type
func (w *World) HasComponent(id EntityId, compType reflect.Type) bool {
	table, ok := w.tables[compType]
	if !ok {
		return false
	}
	return table.Contains(id)
}

// ComponentTypes lists the component types attached to id in registration order.
func (w *World) ComponentTypes(id EntityId) []reflect.Type {
	var types []reflect.Type
	for _, table := range w.order {
		if table.Contains(id) {
			types = append(types, table.Type())
		}
	}
	return types
}

// RegisteredTypes lists every registered component type in registration order.
func (w *World) RegisteredTypes() []reflect.Type {
	types := make([]reflect.Type, len(w.order))
	for i, table := range w.order {
		types[i] = table.Type()
	}
	return types
}

// Insert adds or replaces the T component of a live entity.
func Insert[T any](w *World, id EntityId, component T) *T {
	w.ensureMutable("Insert")
	w.ensureAlive(id)
	return tableOf[T](w).insert(id, component)
}

// Remove deletes the T component of id if present.
func Remove[T any](w *World, id EntityId) bool {
	w.ensureMutable("Remove")
	table, ok := lookupTable[T](w)
	if !ok {
		return false
	}
	return table.remove(id)
}

// Has reports whether id has a T component. Unregistered types are never present.
func Has[T any](w *World, id EntityId) bool {
	table, ok := lookupTable[T](w)
	return ok && table.contains(id)
}

// Get returns id's T component and panics if it has none.
func Get[T any](w *World, id EntityId) *T {
	return tableOf[T](w).get(id)
}

// Lookup returns id's T component if present.
func Lookup[T any](w *World, id EntityId) (*T, bool) {
	table, ok := lookupTable[T](w)
	if !ok {
		return nil, false
	}
	return table.lookup(id)
}

// IsRegistered reports whether T has a table in w.
func IsRegistered[T any](w *World) bool {
	_, ok := lookupTable[T](w)
	return ok
}

func viewFor[S any](w *World) *View[S] {
	t := reflect.TypeFor[S]()
	if v, ok := w.views[t]; ok {
		return v.(*View[S])
	}
	v := NewView[S](w)
	w.views[t] = v
	return v
}

// Entry returns the shape S for one entity and panics if the entity is dead
// or lacks a required component.
func Entry[S any](w *World, id EntityId) S {
	var result S
	if !viewFor[S](w).Fill(id, &result) {
		fatalf(ErrShapeMismatch, "entity %s does not satisfy %s", id, reflect.TypeFor[S]())
	}
	return result
}

// TryEntry is Entry without the panic.
func TryEntry[S any](w *World, id EntityId) (S, bool) {
	return viewFor[S](w).Get(id)
}

// Filtered yields S for every live entity accepted by filter that satisfies S.
// A nil filter accepts every entity.
func Filtered[S any](w *World, filter EntityFilter) iter.Seq[S] {
	return values(viewFor[S](w).Filter(filter))
}

// Components yields S for every live entity that satisfies S.
func Components[S any](w *World) iter.Seq[S] {
	return viewFor[S](w).Values()
}

// Entries yields S for the given entities, in the given order, skipping dead
// and non-matching ones.
func Entries[S any](w *World, ids []EntityId) iter.Seq[S] {
	return values(viewFor[S](w).Entries(ids))
}

// Combinations yields every unordered pair of distinct live entities that both
// satisfy S.
func Combinations[S any](w *World) iter.Seq2[S, S] {
	return viewFor[S](w).Combinations()
}

func values[S any](seq iter.Seq2[EntityId, S]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, item := range seq {
			if !yield(item) {
				return
			}
		}
	}
}
