package main

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/slotecs/ecs"
	"github.com/plus3/slotecs/physics"
)

const (
	paddleHeight = 5
	paddleAccel  = 120
	ballBounce   = 0.9
)

type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

type State int

const (
	Running State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "running"
}

// Config sizes the playing field in terminal cells. MaxSpeed is in cells per second.
type Config struct {
	Width    float64
	Height   float64
	MaxScore int
	MaxSpeed float64
}

// speedFor maps a difficulty name to a speed limit.
func speedFor(difficulty string) (float64, error) {
	switch difficulty {
	case "easy":
		return 20, nil
	case "medium":
		return 30, nil
	case "hard":
		return 40, nil
	}
	return 0, eris.Errorf("unknown difficulty %q", difficulty)
}

// Sound plays game effects.
type Sound interface {
	Hit()
}

type Game struct {
	world  *ecs.World
	rng    *rand.Rand
	sound  Sound
	logger zerolog.Logger
	cfg    Config

	player   ecs.EntityId
	opponent ecs.EntityId
	balls    []ecs.EntityId
	score    *ecs.Singleton[Score]
}

func NewGame(cfg Config, rng *rand.Rand, sound Sound, logger zerolog.Logger) *Game {
	w := ecs.NewWorld(newRegistry(), ecs.WithLogger(logger), ecs.WithEntityCapacity(4))

	g := &Game{
		world:  w,
		rng:    rng,
		sound:  sound,
		logger: logger,
		cfg:    cfg,
		score:  ecs.NewSingleton(w, Score{Max: cfg.MaxScore}),
	}

	g.player = g.spawnPaddle(2, tcell.ColorGreen)
	g.opponent = g.spawnPaddle(cfg.Width-3, tcell.ColorRed)
	g.balls = []ecs.EntityId{g.spawnBall(), g.spawnBall()}
	return g
}

func (g *Game) spawnPaddle(x float64, color tcell.Color) ecs.EntityId {
	b := g.world.Create()
	defer b.Discard()

	return b.
		With(Sprite{Glyph: '█', Color: color}).
		With(physics.Location{Position: cp.Vector{X: x, Y: g.cfg.Height / 4}}).
		With(physics.Velocity{Acceleration: cp.Vector{Y: paddleAccel}}).
		With(physics.Collision{Box: cp.BB{R: 1, T: paddleHeight}, Bounce: 1, InvMass: 1e-3}).
		Build()
}

func (g *Game) spawnBall() ecs.EntityId {
	x := g.cfg.Width/2 + float64(g.rng.Intn(max(int(g.cfg.Width/10), 1)))
	y := float64(g.rng.Intn(max(int(g.cfg.Height)-1, 1)))
	vy := float64(g.rng.Intn(10)+5) / 2
	if g.rng.Intn(2) == 0 {
		vy = -vy
	}

	return g.world.Spawn(
		Sprite{Glyph: 'o', Color: tcell.ColorWhite},
		physics.Location{Position: cp.Vector{X: x, Y: y}},
		physics.Velocity{Linear: cp.Vector{X: -float64(g.rng.Intn(10) + 10), Y: vy}, Rotation: 0.6},
		physics.Collision{Box: cp.BB{R: 1, T: 1}, Bounce: ballBounce, InvMass: 1},
	)
}

func (g *Game) limit() physics.MaxSpeed {
	return physics.Symmetric(g.cfg.MaxSpeed)
}

func (g *Game) Score() Score {
	return *g.score.Get()
}

func (g *Game) State() State {
	score := g.score.Get()
	switch {
	case score.Player >= score.Max:
		return Won
	case score.Opponent >= score.Max:
		return Lost
	}
	return Running
}

// Step advances the game by dt seconds with the player pressing input.
func (g *Game) Step(dt float64, input Direction) State {
	if state := g.State(); state != Running {
		return state
	}

	g.movePlayer(dt, input)
	g.moveBalls(dt)
	g.moveOpponent(dt)
	if physics.ResolveCollisions(g.world, g.limit()) > 0 {
		g.sound.Hit()
	}
	g.checkBounds()

	return g.State()
}

func (g *Game) movePlayer(dt float64, input Direction) {
	p := ecs.Entry[paddle](g.world, g.player)

	accel := p.Acceleration.Y * dt
	switch input {
	case Up:
		p.Linear.Y -= accel
	case Down:
		p.Linear.Y += accel
	default:
		p.Linear.Y = towardZero(p.Linear.Y, accel)
	}

	g.advancePaddle(p, dt)
}

// moveOpponent steers the CPU paddle towards the closest ball heading its way,
// or back to the middle when none is.
func (g *Game) moveOpponent(dt float64) {
	p := ecs.Entry[paddle](g.world, g.opponent)
	size := p.Collision.Size()

	target := g.cfg.Height/2 - size.Y/2
	closest := math.Inf(1)
	for b := range ecs.Entries[ball](g.world, g.balls) {
		delta := p.Position.X - b.Position.X
		if delta*b.Linear.X <= 0 || math.Abs(delta) >= closest {
			continue
		}
		closest = math.Abs(delta)
		target = b.Position.Y + b.Collision.Size().Y/2 - size.Y/2
	}

	projected := p.Position.Y + p.Linear.Y*dt
	accel := p.Acceleration.Y * dt
	switch {
	case projected > target:
		p.Linear.Y -= accel
	case projected < target:
		p.Linear.Y += accel
	}

	g.advancePaddle(p, dt)
}

func (g *Game) advancePaddle(p paddle, dt float64) {
	p.Velocity.Clamp(g.limit())
	p.Position.Y += p.Linear.Y * dt

	height := p.Collision.Size().Y
	switch {
	case p.Position.Y < 0:
		p.Position.Y = 0
		p.Linear.Y = 0
	case p.Position.Y+height > g.cfg.Height:
		p.Position.Y = g.cfg.Height - height
		p.Linear.Y = 0
	}
}

func (g *Game) moveBalls(dt float64) {
	for b := range ecs.Entries[ballMotion](g.world, g.balls) {
		b.Position = b.Position.Add(b.Linear.Mult(dt))
		b.Angle += b.Rotation * dt
	}
}

// checkBounds bounces balls off the top and bottom edges and scores the ones
// leaving through the sides.
func (g *Game) checkBounds() {
	score := g.score.Get()

	var scored []ecs.EntityId
	for b := range ecs.Entries[ballBounds](g.world, g.balls) {
		size := b.Collision.Size()
		if (b.Position.Y < 0 && b.Linear.Y < 0) || (b.Position.Y+size.Y > g.cfg.Height && b.Linear.Y > 0) {
			b.Linear.Y = -b.Linear.Y
		}

		switch {
		case b.Position.X < 0 && b.Linear.X < 0:
			score.Opponent++
			scored = append(scored, b.Id)
		case b.Position.X+size.X > g.cfg.Width && b.Linear.X > 0:
			score.Player++
			scored = append(scored, b.Id)
		}
	}

	for _, id := range scored {
		g.replaceBall(id)
	}
}

func (g *Game) replaceBall(id ecs.EntityId) {
	g.world.Destroy(id)
	replacement := g.spawnBall()

	for i, b := range g.balls {
		if b == id {
			g.balls[i] = replacement
		}
	}

	score := g.score.Get()
	g.logger.Info().
		Stringer("ball", id).
		Stringer("replacement", replacement).
		Int("player", score.Player).
		Int("opponent", score.Opponent).
		Msg("ball scored")
}

// towardZero moves v towards zero by step without crossing it.
func towardZero(v, step float64) float64 {
	if math.Abs(v) <= step {
		return 0
	}
	if v > 0 {
		return v - step
	}
	return v + step
}
