package ecs_test

import (
	"fmt"
	"reflect"

	"github.com/plus3/slotecs/ecs"
)

// ExampleCommands queues structural changes while iterating and applies them
// with Flush. Destroys run first, so an insert aimed at a destroyed entity is
// dropped, and the spawn lands in the freed slot.
func ExampleCommands() {
	w := newTestWorld()
	w.Spawn(Name{Value: "a"})
	b := w.Spawn(Name{Value: "b"})

	cmds := ecs.NewCommands()
	for item := range ecs.Components[struct {
		ID ecs.EntityId
		Name
	}](w) {
		cmds.Insert(item.ID, Tag("seen:"+item.Name.Value))
	}
	cmds.Destroy(b)
	cmds.Spawn(Name{Value: "c"})
	fmt.Printf("queued %d\n", cmds.Len())

	cmds.Flush(w)
	fmt.Printf("queued %d\n", cmds.Len())

	for item := range ecs.Components[struct {
		ID ecs.EntityId
		Name
		Tag *Tag `ecs:"optional"`
	}](w) {
		if item.Tag != nil {
			fmt.Printf("%s %s tag=%s\n", item.ID, item.Name.Value, *item.Tag)
		} else {
			fmt.Printf("%s %s untagged\n", item.ID, item.Name.Value)
		}
	}

	// Output:
	// queued 4
	// queued 0
	// 0v1 a tag=seen:a
	// 1v2 c untagged
}

type HuntSystem struct {
	Hunters ecs.Query[struct {
		ID ecs.EntityId
		Name
		Target
	}]
}

func (s *HuntSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Hunters.Values() {
		prey, ok := ecs.TryEntry[struct {
			Name
			*Health
		}](frame.World, item.Enemy)
		if !ok {
			frame.Commands.Remove(item.ID, reflect.TypeFor[Target]())
			continue
		}

		prey.Current -= 5
		if prey.Current <= 0 {
			frame.Commands.Destroy(item.Enemy)
			hunter, caught := item.Name.Value, prey.Name.Value
			frame.Commands.Defer(func() {
				fmt.Printf("%s caught %s\n", hunter, caught)
			})
		}
	}
}

// ExampleCommands_Defer follows entity references with TryEntry. A hunter
// whose prey is gone drops its Target through Commands.
func ExampleCommands_Defer() {
	w := newTestWorld()
	rabbit := w.Spawn(Name{Value: "rabbit"}, Health{Current: 5, Max: 5})
	deer := w.Spawn(Name{Value: "deer"}, Health{Current: 10, Max: 10})
	fox := w.Spawn(Name{Value: "fox"}, Target{Enemy: rabbit})
	wolf := w.Spawn(Name{Value: "wolf"}, Target{Enemy: deer})

	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&HuntSystem{})
	scheduler.Once(1)
	scheduler.Once(1)

	fmt.Println(ecs.Has[Target](w, fox), ecs.Has[Target](w, wolf), w.Len())

	// Output:
	// fox caught rabbit
	// wolf caught deer
	// false true 2
}
