// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/slotecs/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a world singleton to integrate Dear ImGui into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game runs a Scheduler inside an ebiten.Game, wrapping every update in an
// ImGui frame and drawing the ImGui overlay over Content.
type Game struct {
	Scheduler *ecs.Scheduler
	Backend   *ecs.Singleton[ImguiBackend]
	// Content renders game content beneath the overlay. It may be nil.
	Content func(screen *ebiten.Image)
	// DeltaTime is passed to Scheduler.Once on each update.
	DeltaTime float64
}

// NewGame stores backend as a singleton of w and returns a Game driving scheduler.
func NewGame(w *ecs.World, scheduler *ecs.Scheduler, backend *ebitenbackend.EbitenBackend) *Game {
	return &Game{
		Scheduler: scheduler,
		Backend:   ecs.NewSingleton(w, ImguiBackend{EbitenBackend: backend}),
		DeltaTime: 1.0 / float64(ebiten.TPS()),
	}
}

func (g *Game) Update() error {
	backend := g.Backend.Get()
	backend.BeginFrame()
	g.Scheduler.Once(g.DeltaTime)
	backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.Content != nil {
		g.Content(screen)
	}
	g.Backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
