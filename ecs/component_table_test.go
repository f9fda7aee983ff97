package ecs

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func TestComponentTable(t *testing.T) {
	t.Run("insert replaces existing rows", func(t *testing.T) {
		table := newComponentTable[point]()
		id := NewEntityId(0, 1)

		table.insert(id, point{1, 2})
		table.insert(id, point{3, 4})

		assert.Equal(t, 1, table.len())
		p, ok := table.lookup(id)
		require.True(t, ok)
		assert.Equal(t, point{3, 4}, *p)
	})

	t.Run("stale generations never match", func(t *testing.T) {
		table := newComponentTable[point]()
		table.insert(NewEntityId(5, 1), point{1, 1})

		assert.False(t, table.contains(NewEntityId(5, 2)))
		assert.False(t, table.remove(NewEntityId(5, 2)))
		_, ok := table.lookup(NewEntityId(5, 2))
		assert.False(t, ok)
		assert.True(t, table.contains(NewEntityId(5, 1)))
	})

	t.Run("remove frees the row for reuse", func(t *testing.T) {
		table := newComponentTable[point]()
		a := NewEntityId(0, 1)
		b := NewEntityId(1, 1)

		table.insert(a, point{1, 1})
		require.True(t, table.remove(a))
		assert.False(t, table.remove(a))
		assert.Equal(t, 0, table.len())

		table.insert(b, point{2, 2})
		assert.Equal(t, 1, table.nextRow)
		assert.Equal(t, point{2, 2}, *table.get(b))
	})

	t.Run("pointers survive growth", func(t *testing.T) {
		table := newComponentTable[point]()
		first := table.insert(NewEntityId(0, 1), point{7, 7})

		for i := uint32(1); i < 10*tableBlockSize; i++ {
			table.insert(NewEntityId(i, 1), point{int(i), int(i)})
		}

		p, ok := table.lookup(NewEntityId(0, 1))
		require.True(t, ok)
		assert.Same(t, first, p)
		assert.Equal(t, point{7, 7}, *first)
	})

	t.Run("get panics when absent", func(t *testing.T) {
		table := newComponentTable[point]()
		assert.Panics(t, func() {
			table.get(NewEntityId(0, 1))
		})
	})

	t.Run("ids and clear", func(t *testing.T) {
		table := newComponentTable[point]()
		ids := []EntityId{NewEntityId(3, 1), NewEntityId(1, 1), NewEntityId(2, 4)}
		for _, id := range ids {
			table.InsertAny(id, &point{})
		}
		table.Remove(ids[1])

		var got []EntityId
		for id := range table.Ids() {
			got = append(got, id)
		}
		assert.Equal(t, []EntityId{ids[0], ids[2]}, got)

		table.Clear()
		assert.Equal(t, 0, table.Len())
		assert.False(t, table.Contains(ids[0]))
	})

	t.Run("type-erased access", func(t *testing.T) {
		table := newComponentTable[point]()
		id := NewEntityId(0, 1)
		table.InsertAny(id, point{4, 5})

		got, ok := table.GetAny(id).(*point)
		require.True(t, ok)
		assert.Equal(t, point{4, 5}, *got)
		assert.Nil(t, table.GetAny(NewEntityId(9, 1)))

		var copied point
		require.True(t, table.copyTo(id, unsafe.Pointer(&copied)))
		assert.Equal(t, point{4, 5}, copied)

		assert.Panics(t, func() { table.InsertAny(id, "not a point") })
		assert.Panics(t, func() { table.InsertAny(id, (*point)(nil)) })
	})
}
