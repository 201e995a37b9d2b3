package ecs

// Commands buffers structural changes made by systems during a frame.
// Flush applies them in a fixed order: deletes, spawns, then deferred
// functions, so a delete and a spawn queued in the same frame never leave
// both entities alive at once.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
	onSpawn    func(EntityId)
}

// Defer queues fn to run after all structural changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// SpawnThen queues a spawn and calls onSpawn with the new id once it exists.
func (c *Commands) SpawnThen(onSpawn func(EntityId), components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components, onSpawn: onSpawn})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending reports how many operations are waiting for Flush.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies all queued commands to storage and resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	for _, cmd := range c.spawns {
		id := storage.Spawn(cmd.components...)
		if cmd.onSpawn != nil {
			cmd.onSpawn(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
