package ecs

import (
	"iter"
	"math"
	"strconv"
)

// EntityId encodes both the generation (upper 32 bits) and the slot index (lower 32 bits)
type EntityId uint64

// NilEntity is never issued by a World.
const NilEntity EntityId = 0

// MaxEntities is the largest number of slots a World can address.
const MaxEntities = math.MaxUint32 - 1

// NewEntityId creates an EntityId from a slot index and generation
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is NilEntity.
func (e EntityId) IsZero() bool {
	return e == NilEntity
}

func (e EntityId) String() string {
	return strconv.FormatUint(uint64(e.Index()), 10) + "v" + strconv.FormatUint(uint64(e.Generation()), 10)
}

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotLive
)

// entityAllocator hands out generational slot indices.
// Generations start at 1 so NilEntity never names a live slot. A slot is
// reserved while its builder is open and only becomes live through commit.
type entityAllocator struct {
	generations []uint32
	states      []slotState
	free        []uint32
	live        int
	limit       uint32
}

func newEntityAllocator(capacity int, limit uint32) entityAllocator {
	if limit == 0 || limit > MaxEntities {
		limit = MaxEntities
	}
	return entityAllocator{
		generations: make([]uint32, 0, capacity),
		states:      make([]slotState, 0, capacity),
		limit:       limit,
	}
}

// allocate reserves a slot, reusing the most recently freed one first.
func (a *entityAllocator) allocate() (EntityId, bool) {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		a.states[index] = slotReserved
		return NewEntityId(index, a.generations[index]), true
	}

	if uint32(len(a.generations)) >= a.limit {
		return NilEntity, false
	}

	index := uint32(len(a.generations))
	a.generations = append(a.generations, 1)
	a.states = append(a.states, slotReserved)
	return NewEntityId(index, 1), true
}

// commit makes a reserved slot live.
func (a *entityAllocator) commit(id EntityId) bool {
	if !a.is(id, slotReserved) {
		return false
	}
	a.states[id.Index()] = slotLive
	a.live++
	return true
}

// release frees the slot named by id, live or reserved. Stale or unknown ids
// are ignored.
func (a *entityAllocator) release(id EntityId) bool {
	index := id.Index()
	switch {
	case a.is(id, slotLive):
		a.live--
	case a.is(id, slotReserved):
	default:
		return false
	}
	a.states[index] = slotFree

	// a slot whose generation would wrap is retired for good
	if a.generations[index] == math.MaxUint32 {
		return true
	}
	a.generations[index]++
	a.free = append(a.free, index)
	return true
}

func (a *entityAllocator) is(id EntityId, state slotState) bool {
	index := id.Index()
	if id.Generation() == 0 || index >= uint32(len(a.generations)) {
		return false
	}
	return a.states[index] == state && a.generations[index] == id.Generation()
}

func (a *entityAllocator) isAlive(id EntityId) bool {
	return a.is(id, slotLive)
}

func (a *entityAllocator) isReserved(id EntityId) bool {
	return a.is(id, slotReserved)
}

// len returns the number of live entities. Reserved slots are not counted.
func (a *entityAllocator) len() int {
	return a.live
}

// cap returns the number of slots ever created.
func (a *entityAllocator) cap() int {
	return len(a.generations)
}

// all yields live entities in slot order.
func (a *entityAllocator) all() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for i := 0; i < len(a.generations); i++ {
			if a.states[i] != slotLive {
				continue
			}
			if !yield(NewEntityId(uint32(i), a.generations[i])) {
				return
			}
		}
	}
}
