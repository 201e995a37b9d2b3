package ecs

// UpdateFrame is handed to every system during one Scheduler.Once call.
// Structural changes must go through Commands so queries stay consistent
// until the end of the frame.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
