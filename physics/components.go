// Package physics is a small 2D rigid-box simulation built on the ecs package:
// components for position, motion and collision boxes, plus the systems that
// integrate them.
package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/plus3/slotecs/ecs"
)

type Location struct {
	Position cp.Vector
	Angle    float64
}

type Velocity struct {
	Linear       cp.Vector
	Acceleration cp.Vector
	Rotation     float64
}

// Clamp limits each axis of Linear to the symmetric range given by limit.
// A zero limit on an axis leaves that axis unbounded.
func (v *Velocity) Clamp(limit MaxSpeed) {
	if limit.X > 0 {
		v.Linear.X = math.Max(-limit.X, math.Min(limit.X, v.Linear.X))
	}
	if limit.Y > 0 {
		v.Linear.Y = math.Max(-limit.Y, math.Min(limit.Y, v.Linear.Y))
	}
}

// Collision is an axis-aligned box relative to the entity's Location.
type Collision struct {
	Box     cp.BB
	Bounce  float64
	InvMass float64
}

// At returns the box translated to position.
func (c Collision) At(position cp.Vector) cp.BB {
	return cp.BB{
		L: c.Box.L + position.X,
		B: c.Box.B + position.Y,
		R: c.Box.R + position.X,
		T: c.Box.T + position.Y,
	}
}

// Size returns the width and height of the box.
func (c Collision) Size() cp.Vector {
	return cp.Vector{X: c.Box.R - c.Box.L, Y: c.Box.T - c.Box.B}
}

type MaxSpeed struct {
	X, Y float64
}

// Symmetric returns a MaxSpeed with the same limit on both axes.
func Symmetric(limit float64) MaxSpeed {
	return MaxSpeed{X: limit, Y: limit}
}

// RegisterComponents registers every physics component with r.
func RegisterComponents(r ecs.Registrar) {
	ecs.RegisterComponent[Location](r)
	ecs.RegisterComponent[Velocity](r)
	ecs.RegisterComponent[Collision](r)
	ecs.RegisterComponent[MaxSpeed](r)
}
