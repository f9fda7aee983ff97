package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/slotecs/ecs"
	"github.com/plus3/slotecs/physics"
)

// Sprite is how an entity looks on the terminal.
type Sprite struct {
	Glyph rune
	Color tcell.Color
}

// Score is the game's singleton scoreboard.
type Score struct {
	Player   int
	Opponent int
	Max      int
}

type paddle struct {
	*physics.Location
	*physics.Velocity
	physics.Collision
}

type ball struct {
	physics.Location
	physics.Velocity
	physics.Collision
}

type ballMotion struct {
	*physics.Location
	physics.Velocity
}

type ballBounds struct {
	Id ecs.EntityId
	physics.Location
	*physics.Velocity
	physics.Collision
}

type drawable struct {
	physics.Location
	physics.Collision
	Sprite
}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	physics.RegisterComponents(registry)
	ecs.RegisterComponent[Sprite](registry)
	return registry
}
