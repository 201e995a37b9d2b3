package ecs_test

import (
	"testing"

	"github.com/plus3/shapeshow/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcSystem func(frame *ecs.UpdateFrame)

func (f funcSystem) Execute(frame *ecs.UpdateFrame) { f(frame) }

func TestCommands(t *testing.T) {
	registry := newTestRegistry()

	t.Run("spawns apply after the frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		view := ecs.NewView[struct{ *Position }](storage)

		var during int
		scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
			frame.Commands.Spawn(Position{X: 1}, Velocity{})
			frame.Commands.Spawn(Position{X: 2})
			during = view.Count()
		}))
		scheduler.Once(1)

		assert.Zero(t, during)
		assert.Equal(t, 2, view.Count())
	})

	t.Run("delete removes only the named entity", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		e1 := storage.Spawn(Position{X: 1})
		e2 := storage.Spawn(Position{X: 2})

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
			frame.Commands.Delete(e1)
		}))
		scheduler.Once(1)

		assert.False(t, storage.Alive(e1))
		assert.True(t, storage.Alive(e2))
	})

	t.Run("stale delete does not touch the slot's new occupant", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		stale := storage.Spawn(Position{X: 1})
		storage.Delete(stale)
		current := storage.Spawn(Position{X: 2})
		require.Equal(t, stale.Index(), current.Index())

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
			frame.Commands.Delete(stale)
		}))
		scheduler.Once(1)

		assert.True(t, storage.Alive(current))
	})

	t.Run("spawn callbacks and defers run in order", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		old := storage.Spawn(Marker{})

		var events []string
		var spawned ecs.EntityId
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(funcSystem(func(frame *ecs.UpdateFrame) {
			frame.Commands.Defer(func() {
				events = append(events, "defer")
				assert.True(t, storage.Alive(spawned))
			})
			frame.Commands.SpawnThen(func(id ecs.EntityId) {
				events = append(events, "spawn")
				assert.False(t, storage.Alive(old), "delete flushed first")
				spawned = id
			}, Marker{})
			frame.Commands.Delete(old)
			assert.Equal(t, 3, frame.Commands.Pending())
		}))
		scheduler.Once(1)

		assert.Equal(t, []string{"spawn", "defer"}, events)
		assert.Equal(t, old.Index(), spawned.Index())
		assert.NotEqual(t, old, spawned)
	})
}
