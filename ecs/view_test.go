package ecs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slotecs/ecs"
)

func TestView(t *testing.T) {
	w := newTestWorld()
	entityId := w.Spawn(&Position{X: 1, Y: 2}, Temperature(32))

	view := ecs.NewView[struct {
		*Position
		*Temperature
	}](w)

	item, ok := view.Get(entityId)
	require.True(t, ok)
	assert.Equal(t, Temperature(32), *item.Temperature)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Position.Y)
}

func TestViewMissingComponent(t *testing.T) {
	w := newTestWorld()
	// Entity only has Position, not Velocity
	entityId := w.Spawn(&Position{X: 5, Y: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](w)

	_, ok := view.Get(entityId)
	assert.False(t, ok)
	assert.False(t, view.Matches(entityId))
}

func TestViewAndSemantics(t *testing.T) {
	w := newTestWorld()
	both := w.Spawn(Position{X: 1}, Velocity{DX: 1})
	w.Spawn(Position{X: 2})
	w.Spawn(Velocity{DX: 3})
	alsoBoth := w.Spawn(Velocity{DX: 4}, Name{Value: "extra"}, Position{X: 4})

	view := ecs.NewView[struct {
		ID ecs.EntityId
		*Position
		Velocity
	}](w)

	var ids []ecs.EntityId
	for id, item := range view.Iter() {
		assert.Equal(t, id, item.ID)
		assert.Equal(t, item.Position.X, item.Velocity.DX)
		ids = append(ids, id)
	}
	assert.Equal(t, []ecs.EntityId{both, alsoBoth}, ids)
}

func TestViewIdentity(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn()
	b := w.Spawn(Position{})
	dead := w.Spawn()
	w.Destroy(dead)

	var ids []ecs.EntityId
	for item := range ecs.Components[struct{ ID ecs.EntityId }](w) {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []ecs.EntityId{a, b}, ids, "the identity shape matches every live entity")

	_, ok := ecs.TryEntry[struct{ ID ecs.EntityId }](w, dead)
	assert.False(t, ok)
}

func TestViewOptional(t *testing.T) {
	w := newTestWorld()
	withHealth := w.Spawn(Position{X: 1}, Health{Current: 10})
	without := w.Spawn(Position{X: 2})

	type MaybeHurt struct {
		*Position
		Health *Health `ecs:"optional"`
	}

	item := ecs.Entry[MaybeHurt](w, withHealth)
	require.NotNil(t, item.Health)
	assert.Equal(t, 10, item.Health.Current)

	item = ecs.Entry[MaybeHurt](w, without)
	assert.Nil(t, item.Health)
	assert.Equal(t, float32(2), item.Position.X)

	count := 0
	for range ecs.Components[MaybeHurt](w) {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestViewOptionalUnregistered(t *testing.T) {
	type Unregistered struct{ V int }
	w := newTestWorld()
	id := w.Spawn(Position{})

	item, ok := ecs.TryEntry[struct {
		*Position
		Extra *Unregistered `ecs:"optional"`
	}](w, id)
	require.True(t, ok)
	assert.Nil(t, item.Extra)

	_, ok = ecs.TryEntry[struct {
		*Position
		*Unregistered
	}](w, id)
	assert.False(t, ok, "an unregistered required type matches nothing")
}

func TestViewReadOnlyCopies(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(Position{X: 1}, Velocity{DX: 5})

	item := ecs.Entry[struct {
		Position
		*Velocity
	}](w, id)
	item.Position.X = 100
	item.Velocity.DX = 50

	assert.Equal(t, float32(1), ecs.Get[Position](w, id).X, "value fields are copies")
	assert.Equal(t, float32(50), ecs.Get[Velocity](w, id).DX, "pointer fields alias storage")
}

func TestViewNamedFields(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(Name{Value: "named"}, Score(7), int32(3), "label")

	item := ecs.Entry[struct {
		Label  *string
		Count  int32
		Points *Score
		Who    Name
	}](w, id)

	assert.Equal(t, "label", *item.Label)
	assert.Equal(t, int32(3), item.Count)
	assert.Equal(t, Score(7), *item.Points)
	assert.Equal(t, "named", item.Who.Value)
}

func TestViewMutationVisibility(t *testing.T) {
	w := newTestWorld()
	ids := []ecs.EntityId{
		w.Spawn(Position{X: 1}, Velocity{DX: 1}),
		w.Spawn(Position{X: 2}, Velocity{DX: 2}),
	}

	for item := range ecs.Components[struct {
		*Position
		Velocity
	}](w) {
		item.Position.X += item.Velocity.DX
	}

	assert.Equal(t, float32(2), ecs.Get[Position](w, ids[0]).X)
	assert.Equal(t, float32(4), ecs.Get[Position](w, ids[1]).X)
}

func TestViewEntryMismatch(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(Position{})

	requirePanicsWith(t, ecs.ErrShapeMismatch, func() {
		ecs.Entry[struct{ *Velocity }](w, id)
	})

	w.Destroy(id)
	requirePanicsWith(t, ecs.ErrShapeMismatch, func() {
		ecs.Entry[struct{ *Position }](w, id)
	})
}

func TestViewEntries(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(Position{X: 1})
	b := w.Spawn(Position{X: 2})
	c := w.Spawn(Position{X: 3})
	noPosition := w.Spawn(Velocity{})
	dead := w.Spawn(Position{X: 4})
	w.Destroy(dead)

	var xs []float32
	for item := range ecs.Entries[struct{ *Position }](w, []ecs.EntityId{c, dead, noPosition, a}) {
		xs = append(xs, item.X)
	}
	assert.Equal(t, []float32{3, 1}, xs, "caller order is kept and non-matching ids are skipped")

	for range ecs.Entries[struct{ *Position }](w, nil) {
		t.Fatal("an empty id list yields nothing")
	}

	touched := 0
	for item := range ecs.Entries[struct{ *Position }](w, []ecs.EntityId{b}) {
		item.X = 20
		touched++
	}
	assert.Equal(t, 1, touched)
	assert.Equal(t, float32(20), ecs.Get[Position](w, b).X)
	assert.Equal(t, float32(1), ecs.Get[Position](w, a).X, "ids outside the list are untouched")
}

func TestViewCombinations(t *testing.T) {
	t.Run("every unordered pair once, first before second", func(t *testing.T) {
		w := newTestWorld()
		var ids []ecs.EntityId
		for i := 0; i < 5; i++ {
			ids = append(ids, w.Spawn(Position{X: float32(i)}))
			w.Spawn(Velocity{})
		}

		type pair struct{ a, b ecs.EntityId }
		var pairs []pair
		for a, b := range ecs.Combinations[struct{ ID ecs.EntityId; *Position }](w) {
			require.NotEqual(t, a.ID, b.ID)
			pairs = append(pairs, pair{a.ID, b.ID})
		}

		require.Len(t, pairs, 5*4/2)
		seen := make(map[pair]bool)
		for _, p := range pairs {
			assert.Less(t, slices.Index(ids, p.a), slices.Index(ids, p.b))
			assert.False(t, seen[p], "pair %v repeated", p)
			seen[p] = true
		}
	})

	t.Run("destroyed entities are never paired", func(t *testing.T) {
		w := newTestWorld()
		a := w.Spawn(Position{X: 1})
		gone := w.Spawn(Position{X: 2})
		c := w.Spawn(Position{X: 3})
		require.True(t, w.Destroy(gone))

		var pairs [][2]ecs.EntityId
		for x, y := range ecs.Combinations[struct{ ID ecs.EntityId; *Position }](w) {
			pairs = append(pairs, [2]ecs.EntityId{x.ID, y.ID})
		}
		assert.Equal(t, [][2]ecs.EntityId{{a, c}}, pairs)
	})

	t.Run("degenerate sizes", func(t *testing.T) {
		w := newTestWorld()
		for range ecs.Combinations[struct{ *Position }](w) {
			t.Fatal("no pairs from an empty world")
		}

		w.Spawn(Position{})
		for range ecs.Combinations[struct{ *Position }](w) {
			t.Fatal("no pairs from a single entity")
		}
	})

	t.Run("both sides are mutable", func(t *testing.T) {
		w := newTestWorld()
		a := w.Spawn(Position{}, Health{Current: 0})
		b := w.Spawn(Position{}, Health{Current: 0})
		c := w.Spawn(Position{}, Health{Current: 0})

		for x, y := range ecs.Combinations[struct{ *Health }](w) {
			x.Current++
			y.Current++
		}

		for _, id := range []ecs.EntityId{a, b, c} {
			assert.Equal(t, 2, ecs.Get[Health](w, id).Current)
		}
	})

	t.Run("early break", func(t *testing.T) {
		w := newTestWorld()
		for i := 0; i < 4; i++ {
			w.Spawn(Position{})
		}
		count := 0
		for range ecs.Combinations[struct{ *Position }](w) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestViewFilter(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(Position{X: 1})
	b := w.Spawn(Position{X: 2})
	c := w.Spawn(Position{X: 3})

	collect := func(filter ecs.EntityFilter) []float32 {
		var xs []float32
		for item := range ecs.Filtered[struct{ *Position }](w, filter) {
			xs = append(xs, item.X)
		}
		return xs
	}

	assert.Equal(t, []float32{1, 2, 3}, collect(nil))
	assert.Equal(t, []float32{2}, collect(ecs.IsEntity(b)))
	assert.Equal(t, []float32{1, 3}, collect(ecs.IsNotEntity(b)))
	assert.Equal(t, []float32{1, 3}, collect(ecs.AnyOf(c, a)))
	assert.Equal(t, []float32{3}, collect(ecs.And(ecs.AnyOf(c, a), ecs.Not(ecs.IsEntity(a)))))
	assert.Equal(t, []float32{1}, collect(ecs.FilterFunc(func(id ecs.EntityId) bool {
		return id == a
	})))
}

func TestViewBorrowConflicts(t *testing.T) {
	requirePanicsWith(t, ecs.ErrBorrowConflict, func() {
		ecs.NewView[struct {
			A *Position
			B *Position
		}](newTestWorld())
	})
	requirePanicsWith(t, ecs.ErrBorrowConflict, func() {
		ecs.NewView[struct {
			A *Position
			B Position
		}](newTestWorld())
	})
	requirePanicsWith(t, ecs.ErrBorrowConflict, func() {
		ecs.NewView[struct {
			A Position
			B *Position `ecs:"optional"`
		}](newTestWorld())
	})

	assert.NotPanics(t, func() {
		ecs.NewView[struct {
			A Position
			B Position
			*Velocity
		}](newTestWorld())
	}, "shared borrows of one type and exclusive borrows of distinct types are fine")
}

func TestViewInvalidShapes(t *testing.T) {
	w := newTestWorld()

	requirePanicsWith(t, ecs.ErrInvalidShape, func() { ecs.NewView[Position](w) })
	requirePanicsWith(t, ecs.ErrInvalidShape, func() { ecs.NewView[*struct{ *Position }](w) })
	requirePanicsWith(t, ecs.ErrInvalidShape, func() {
		ecs.NewView[struct {
			P *Position `ecs:"required"`
		}](w)
	})
	requirePanicsWith(t, ecs.ErrInvalidShape, func() {
		ecs.NewView[struct {
			P Position `ecs:"optional"`
		}](w)
	})
	requirePanicsWith(t, ecs.ErrInvalidShape, func() {
		ecs.NewView[struct {
			P **Position
		}](w)
	})
	requirePanicsWith(t, ecs.ErrInvalidShape, func() {
		ecs.NewView[struct {
			position *Position
		}](w)
	})
}

func TestViewLateRegistration(t *testing.T) {
	type Late struct{ V int }
	w := newTestWorld()
	id := w.Spawn(Position{})

	view := ecs.NewView[struct {
		*Position
		*Late
	}](w)
	assert.False(t, view.Matches(id))

	ecs.RegisterComponent[Late](w)
	ecs.Insert(w, id, Late{V: 1})

	item, ok := view.Get(id)
	require.True(t, ok)
	assert.Equal(t, 1, item.Late.V)
}

func TestViewSpawn(t *testing.T) {
	w := newTestWorld()

	type Spawnable struct {
		ID ecs.EntityId
		*Position
		Velocity
		Health *Health `ecs:"optional"`
	}
	view := ecs.NewView[Spawnable](w)

	id := view.Spawn(Spawnable{
		Position: &Position{X: 1, Y: 2},
		Velocity: Velocity{DX: 3},
	})

	item, ok := view.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, Position{X: 1, Y: 2}, *item.Position)
	assert.Equal(t, float32(3), item.Velocity.DX)
	assert.Nil(t, item.Health)

	requirePanicsWith(t, ecs.ErrInvalidComponent, func() {
		view.Spawn(Spawnable{})
	})
	assert.Equal(t, 1, w.Len(), "a failed spawn leaves nothing behind")
}

func TestViewFill(t *testing.T) {
	w := newTestWorld()
	entityId := w.Spawn(&Position{X: 3, Y: 4}, &Health{Current: 50, Max: 100})

	view := ecs.NewView[struct {
		*Position
		*Health
	}](w)

	var result struct {
		*Position
		*Health
	}
	require.True(t, view.Fill(entityId, &result))
	assert.Equal(t, float32(3), result.Position.X)
	assert.Equal(t, 100, result.Health.Max)

	w.Destroy(entityId)
	assert.False(t, view.Fill(entityId, &result))
}
