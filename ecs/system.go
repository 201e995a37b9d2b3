package ecs

// System is a unit of per-frame behavior. Query and Singleton fields on the
// implementing struct are bound to storage by Scheduler.Register; any other
// fields are private system state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
