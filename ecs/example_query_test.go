package ecs_test

import (
	"fmt"

	"github.com/plus3/slotecs/ecs"
)

// ExampleQuery runs a Query by hand. Execute fixes the set of entities for the
// frame; entities destroyed afterwards are skipped when the snapshot is walked.
func ExampleQuery() {
	w := newTestWorld()
	ann := w.Spawn(Name{Value: "ann"}, Health{Current: 3, Max: 10})
	w.Spawn(Name{Value: "bob"}, Health{Current: 10, Max: 10})
	cy := w.Spawn(Name{Value: "cy"}, Health{Current: 1, Max: 10})

	wounded := ecs.NewQuery[struct {
		ID ecs.EntityId
		Name
		*Health
	}](w)
	wounded.Execute()
	fmt.Printf("snapshot holds %d entities\n", wounded.Len())

	w.Destroy(cy)

	for id, item := range wounded.Iter() {
		if item.Current < item.Max {
			item.Current = item.Max
			fmt.Printf("%s (%s) healed\n", item.Name.Value, id)
		}
	}
	fmt.Printf("ann now at %d\n", ecs.Get[Health](w, ann).Current)

	// Output:
	// snapshot holds 3 entities
	// ann (0v1) healed
	// ann now at 10
}

// ExampleQuery_Combinations pairs up the entities of a snapshot. Each pair is
// reported once, earlier slot first.
func ExampleQuery_Combinations() {
	w := newTestWorld()
	w.Spawn(Name{Value: "a"}, Position{X: 0})
	w.Spawn(Name{Value: "b"}, Position{X: 3})
	w.Spawn(Velocity{})
	w.Spawn(Name{Value: "c"}, Position{X: 10})

	placed := ecs.NewQuery[struct {
		Name
		Position
	}](w)
	placed.Execute()

	for a, b := range placed.Combinations() {
		fmt.Printf("%s-%s %.0f\n", a.Name.Value, b.Name.Value, b.X-a.X)
	}

	// Output:
	// a-b 3
	// a-c 10
	// b-c 7
}
