package ecs

// UpdateFrame is handed to every system during one Scheduler step.
type UpdateFrame struct {
	DeltaTime float64
	Tick      uint64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, tick uint64, w *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  NewCommands(),
		World:     w,
	}
}
