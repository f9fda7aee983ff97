package physics

import (
	"github.com/plus3/slotecs/ecs"
)

type mover struct {
	*Location
	Velocity
}

type body struct {
	*Location
	*Velocity
	Collision
	Limit *MaxSpeed `ecs:"optional"`
}

func (m mover) step(dt float64) {
	m.Location.Position = m.Location.Position.Add(m.Velocity.Linear.Mult(dt))
	m.Location.Angle += m.Velocity.Rotation * dt
}

// Integrate advances every entity with a Location and a Velocity by dt.
func Integrate(w *ecs.World, dt float64) {
	for item := range ecs.Components[mover](w) {
		item.step(dt)
	}
}

// ResolveCollisions pushes apart every pair of overlapping bodies and applies
// a bounce impulse to pairs moving towards each other. Bodies without their
// own MaxSpeed are clamped to limit. It returns the number of overlapping pairs.
func ResolveCollisions(w *ecs.World, limit MaxSpeed) int {
	collisions := 0
	for a, b := range ecs.Combinations[body](w) {
		if resolve(a, b, limit) {
			collisions++
		}
	}
	return collisions
}

func resolve(a, b body, limit MaxSpeed) bool {
	collided, ok := Separation(a.Collision.At(a.Position), b.Collision.At(b.Position))
	if !ok {
		return false
	}

	invMasses := a.InvMass + b.InvMass
	if invMasses <= 0 {
		return true
	}

	// unstick
	a.Position = a.Position.Sub(collided.Separation.Mult(a.InvMass / invMasses))
	b.Position = b.Position.Add(collided.Separation.Mult(b.InvMass / invMasses))

	relative := a.Linear.Sub(b.Linear)
	approach := relative.Dot(collided.Normal)
	if approach <= 0 {
		return true
	}

	elasticity := min(a.Bounce, b.Bounce)
	impulse := -(1 + elasticity) * approach / invMasses

	a.Linear = a.Linear.Add(collided.Normal.Mult(impulse * a.InvMass))
	b.Linear = b.Linear.Sub(collided.Normal.Mult(impulse * b.InvMass))

	a.Velocity.Clamp(a.limit(limit))
	b.Velocity.Clamp(b.limit(limit))
	return true
}

func (b body) limit(fallback MaxSpeed) MaxSpeed {
	if b.Limit != nil {
		return *b.Limit
	}
	return fallback
}

// MovementSystem integrates positions each frame.
type MovementSystem struct {
	Movers ecs.Query[mover]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Movers.Values() {
		item.step(frame.DeltaTime)
	}
}

// CollisionSystem resolves overlapping bodies each frame.
type CollisionSystem struct {
	Bodies ecs.Query[body]
	Limit  MaxSpeed

	// Collisions counts overlapping pairs seen during the last frame.
	Collisions int
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	s.Collisions = 0
	for a, b := range s.Bodies.Combinations() {
		if resolve(a, b, s.Limit) {
			s.Collisions++
		}
	}
}
