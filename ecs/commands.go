package ecs

import "reflect"

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// Structural changes are rejected while a query is being iterated, so systems queue them here.
type Commands struct {
	spawns   []spawnCommand
	destroys []EntityId
	inserts  []insertCommand
	removes  []removeCommand
	defers   []func()
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type insertCommand struct {
	entity    EntityId
	component any
}

type removeCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after every other queued operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(entity EntityId) {
	c.destroys = append(c.destroys, entity)
}

// Insert queues adding or replacing a component, given as T or *T.
func (c *Commands) Insert(entity EntityId, component any) {
	c.inserts = append(c.inserts, insertCommand{
		entity:    entity,
		component: component,
	})
}

// Remove queues a component removal operation.
func (c *Commands) Remove(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeCommand{
		entity:   entity,
		compType: compType,
	})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.destroys) + len(c.inserts) + len(c.removes) + len(c.defers)
}

// Flush applies the queued operations to w and resets the buffer.
// Destroys run first, then removes, inserts, spawns and deferred functions.
// Operations on entities that are dead by the time they run are dropped.
func (c *Commands) Flush(w *World) {
	if c.Len() == 0 {
		return
	}

	destroyed := 0
	for _, id := range c.destroys {
		if w.Destroy(id) {
			destroyed++
		}
	}

	for _, cmd := range c.removes {
		if w.IsAlive(cmd.entity) {
			w.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	skipped := 0
	for _, cmd := range c.inserts {
		if !w.IsAlive(cmd.entity) {
			skipped++
			continue
		}
		w.InsertComponent(cmd.entity, cmd.component)
	}

	for _, cmd := range c.spawns {
		w.Spawn(cmd.components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	w.logger.Debug().
		Int("destroyed", destroyed).
		Int("removes", len(c.removes)).
		Int("inserts", len(c.inserts)-skipped).
		Int("spawned", len(c.spawns)).
		Int("deferred", len(c.defers)).
		Msg("commands flushed")

	clear(c.spawns)
	clear(c.inserts)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.inserts = c.inserts[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
