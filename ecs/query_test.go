package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slotecs/ecs"
)

func TestQuery(t *testing.T) {
	type Moving struct {
		*Position
		Velocity
	}

	t.Run("iterates the snapshot taken by execute", func(t *testing.T) {
		w := newTestWorld()
		w.Spawn(Position{X: 1}, Velocity{DX: 1})
		w.Spawn(Position{X: 2}, Velocity{DX: 2})
		w.Spawn(Position{X: 3})

		query := ecs.NewQuery[Moving](w)
		query.Execute()
		assert.Equal(t, 2, query.Len())

		w.Spawn(Position{X: 4}, Velocity{DX: 4})

		count := 0
		for _, item := range query.Iter() {
			item.X += item.DX
			count++
		}
		assert.Equal(t, 2, count, "entities spawned after execute are not visited")

		query.Execute()
		assert.Equal(t, 3, query.Len())
	})

	t.Run("panics before execute", func(t *testing.T) {
		query := ecs.NewQuery[Moving](newTestWorld())

		requirePanicsWith(t, ecs.ErrQueryNotExecuted, func() { query.Iter() })
		requirePanicsWith(t, ecs.ErrQueryNotExecuted, func() { query.Values() })
		requirePanicsWith(t, ecs.ErrQueryNotExecuted, func() { query.Combinations() })
	})

	t.Run("skips entities destroyed after execute", func(t *testing.T) {
		w := newTestWorld()
		a := w.Spawn(Position{X: 1}, Velocity{})
		b := w.Spawn(Position{X: 2}, Velocity{})

		query := ecs.NewQuery[Moving](w)
		query.Execute()
		w.Destroy(a)

		var xs []float32
		for item := range query.Values() {
			xs = append(xs, item.X)
		}
		assert.Equal(t, []float32{2}, xs)
		assert.True(t, w.IsAlive(b))
	})

	t.Run("combinations over the snapshot", func(t *testing.T) {
		w := newTestWorld()
		for i := 0; i < 4; i++ {
			w.Spawn(Position{}, Velocity{})
		}

		query := ecs.NewQuery[Moving](w)
		query.Execute()

		count := 0
		for a, b := range query.Combinations() {
			assert.NotSame(t, a.Position, b.Position)
			count++
		}
		assert.Equal(t, 6, count)
	})

	t.Run("combinations skip entities destroyed after execute", func(t *testing.T) {
		type Tagged struct {
			ID ecs.EntityId
			*Position
		}

		w := newTestWorld()
		a := w.Spawn(Position{X: 1})
		gone := w.Spawn(Position{X: 2})
		c := w.Spawn(Position{X: 3})

		query := ecs.NewQuery[Tagged](w)
		query.Execute()
		require.Equal(t, 3, query.Len())
		w.Destroy(gone)

		var pairs [][2]ecs.EntityId
		for x, y := range query.Combinations() {
			pairs = append(pairs, [2]ecs.EntityId{x.ID, y.ID})
		}
		assert.Equal(t, [][2]ecs.EntityId{{a, c}}, pairs)
	})

	t.Run("combinations keep the first side across pairs", func(t *testing.T) {
		type Tagged struct {
			ID ecs.EntityId
			Position
		}

		w := newTestWorld()
		for i := 1; i <= 3; i++ {
			w.Spawn(Position{X: float32(i)})
		}

		query := ecs.NewQuery[Tagged](w)
		query.Execute()

		var xs [][2]float32
		for x, y := range query.Combinations() {
			xs = append(xs, [2]float32{x.X, y.X})
		}
		assert.Equal(t, [][2]float32{{1, 2}, {1, 3}, {2, 3}}, xs)
	})
}
