package ecs_test

import (
	"fmt"

	"github.com/plus3/slotecs/ecs"
)

type Weather struct {
	Raining bool
	Wind    float32
}

// ExampleNewSingleton creates a world-global value. Later handles share it, and
// their initializer is ignored once the value exists.
func ExampleNewSingleton() {
	w := ecs.NewWorld(ecs.NewComponentRegistry())

	weather := ecs.NewSingleton(w, Weather{Wind: 2})
	weather.Get().Raining = true

	again := ecs.NewSingleton(w, Weather{Wind: 9})
	fmt.Printf("raining=%t wind=%.0f\n", again.Get().Raining, again.Get().Wind)

	// Output:
	// raining=true wind=2
}

// ExampleSingleton_Exists binds a handle before the value is added. The handle
// picks the value up as soon as it appears.
func ExampleSingleton_Exists() {
	w := ecs.NewWorld(ecs.NewComponentRegistry())

	var weather ecs.Singleton[Weather]
	weather.Init(w)
	fmt.Println(weather.Exists(), weather.Get() == nil)

	w.AddSingleton(Weather{Raining: true})
	fmt.Println(weather.Exists(), weather.Get().Raining)

	// Output:
	// false true
	// true true
}

// ExampleWorld_ReadSingleton reads singletons without a handle. Adding a value
// of an existing type overwrites it in place.
func ExampleWorld_ReadSingleton() {
	w := ecs.NewWorld(ecs.NewComponentRegistry())
	w.AddSingleton(&Weather{Wind: 1})

	var current *Weather
	if w.ReadSingleton(&current) {
		fmt.Printf("wind %.0f\n", current.Wind)
	}

	w.AddSingleton(Weather{Wind: 5})
	fmt.Printf("wind %.0f\n", current.Wind)

	var missing *Inventory
	fmt.Println(w.ReadSingleton(&missing), w.SingletonTypes())

	// Output:
	// wind 1
	// wind 5
	// false [ecs_test.Weather]
}
