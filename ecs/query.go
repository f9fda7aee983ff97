package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// Query is a View bound to a system. Execute snapshots the matching entities
// once per frame; Iter, Values and Combinations then walk that snapshot.
//
// Query fields on a System are initialized by the Scheduler at registration.
type Query[S any] struct {
	view     *View[S]
	world    *World
	entities []EntityId
	executed bool
}

// NewQuery creates a Query over w.
func NewQuery[S any](w *World) *Query[S] {
	q := &Query[S]{}
	q.Init(w)
	return q
}

// Init initializes or re-initializes the Query with a world.
// Called by the Scheduler during system registration.
func (q *Query[S]) Init(w *World) {
	q.view = viewFor[S](w)
	q.world = w
	q.entities = q.entities[:0]
	q.executed = false
}

// Execute snapshots the ids of every entity currently satisfying S.
// Called automatically by the Scheduler before the owning system runs.
func (q *Query[S]) Execute() {
	q.entities = q.entities[:0]

	w := q.world
	q.view.resolve()
	for id := range w.entities.all() {
		if q.view.satisfied(id) {
			q.entities = append(q.entities, id)
		}
	}
	q.executed = true
}

func (q *Query[S]) ensureExecuted(op string) {
	if !q.executed {
		fatalf(ErrQueryNotExecuted, "Query[%s].%s", reflect.TypeFor[S](), op)
	}
}

// Len returns the number of entities captured by the last Execute.
func (q *Query[S]) Len() int {
	return len(q.entities)
}

// Iter returns an iterator over entity IDs and component data.
// Entities destroyed or changed since Execute are skipped.
// Panics if Execute() has not been called.
func (q *Query[S]) Iter() iter.Seq2[EntityId, S] {
	q.ensureExecuted("Iter")
	return q.view.Entries(q.entities)
}

// Values returns an iterator over component data only.
// Panics if Execute() has not been called.
func (q *Query[S]) Values() iter.Seq[S] {
	q.ensureExecuted("Values")
	return values(q.view.Entries(q.entities))
}

// Combinations yields every unordered pair from the snapshot.
// Panics if Execute() has not been called.
func (q *Query[S]) Combinations() iter.Seq2[S, S] {
	q.ensureExecuted("Combinations")
	return func(yield func(S, S) bool) {
		w := q.world
		w.beginIteration()
		defer w.endIteration()
		q.view.resolve()

		var a, b S
		aPtr, bPtr := unsafe.Pointer(&a), unsafe.Pointer(&b)
		for i := 0; i < len(q.entities); i++ {
			if !w.entities.isAlive(q.entities[i]) || !q.view.populate(q.entities[i], aPtr) {
				continue
			}
			for j := i + 1; j < len(q.entities); j++ {
				if !w.entities.isAlive(q.entities[j]) || !q.view.populate(q.entities[j], bPtr) {
					continue
				}
				if !yield(a, b) {
					return
				}
			}
		}
	}
}
