package ecs_test

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/plus3/slotecs/ecs"
)

type Poisoned struct {
	PerSecond int
}

type PoisonSystem struct {
	Victims ecs.Query[struct {
		ID ecs.EntityId
		*Health
		Poisoned
	}]
}

func (s *PoisonSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Victims.Values() {
		item.Current -= int(float64(item.PerSecond) * frame.DeltaTime)
		if item.Current <= 0 {
			frame.Commands.Destroy(item.ID)
		}
	}
}

// ExampleScheduler steps a single system. Entities that die during a frame are
// queued on the frame's Commands and removed once every system has run.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Poisoned](registry)
	w := ecs.NewWorld(registry)

	w.Spawn(Name{Value: "slime"}, Health{Current: 3, Max: 3}, Poisoned{PerSecond: 2})
	w.Spawn(Name{Value: "knight"}, Health{Current: 9, Max: 9}, Poisoned{PerSecond: 2})
	w.Spawn(Name{Value: "healer"}, Health{Current: 5, Max: 5})

	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&PoisonSystem{})
	for range 2 {
		scheduler.Once(1)
	}

	for item := range ecs.Components[struct {
		Name
		Health
	}](w) {
		fmt.Printf("%s: %d/%d\n", item.Name.Value, item.Current, item.Max)
	}
	fmt.Printf("ticks: %d\n", scheduler.Tick())

	// Output:
	// knight: 5/9
	// healer: 5/5
	// ticks: 2
}

// ExampleScheduler_Run drives the systems from a ticker until ctx is done.
func ExampleScheduler_Run() {
	w := newTestWorld()
	frames := 0
	scheduler := ecs.NewScheduler(w)
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frames++
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	scheduler.Run(ctx, 10*time.Millisecond)

	fmt.Println(frames > 0, uint64(frames) == scheduler.Tick())

	// Output:
	// true true
}

type Wave struct {
	Number    int
	Remaining int
}

type WaveSystem struct {
	Enemies ecs.Query[struct{ AI }]
	Wave    ecs.Singleton[Wave]
}

func (s *WaveSystem) Execute(frame *ecs.UpdateFrame) {
	wave := s.Wave.Get()
	wave.Remaining = s.Enemies.Len()
	if wave.Remaining > 0 {
		return
	}
	wave.Number++
	for range wave.Number {
		frame.Commands.Spawn(AI{})
	}
}

// ExampleScheduler_singletons shares a Singleton between a system and the
// caller. The second wave reuses the first wave's slot under a new generation.
func ExampleScheduler_singletons() {
	w := newTestWorld()
	wave := ecs.NewSingleton[Wave](w)

	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&WaveSystem{})

	report := func() {
		fmt.Printf("wave %d: %d alive\n", wave.Get().Number, w.Len())
	}

	scheduler.Once(1)
	report()
	scheduler.Once(1)
	report()

	for _, id := range slices.Collect(w.Entities()) {
		w.Destroy(id)
	}
	scheduler.Once(1)
	report()
	fmt.Println(slices.Collect(w.Entities()))

	// Output:
	// wave 1: 1 alive
	// wave 1: 1 alive
	// wave 2: 2 alive
	// [0v2 1v1]
}
