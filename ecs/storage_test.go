package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/shapeshow/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDE},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, entityId.ArchetypeId())
			assert.Equal(t, tt.index, entityId.Index())
			assert.Zero(t, entityId.Generation())
		})
	}

	assert.Panics(t, func() { ecs.NewEntityId(0, 1<<24) })
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Velocity{DX: 1})
	assert.True(t, storage.Alive(id))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	pos.X = 10
	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, id).X)

	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Health]()))
}

func TestSpawnSharesArchetypeRegardlessOfOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
	assert.Len(t, storage.Archetypes(), 1)
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Marker{})
	assert.True(t, storage.Delete(id))
	assert.False(t, storage.Alive(id))
	assert.Nil(t, ecs.ReadComponent[Position](storage, id))

	assert.False(t, storage.Delete(id), "second delete is a no-op")
	assert.False(t, storage.Delete(ecs.NewEntityId(42, 0)), "unknown archetype")
}

func TestDeletedSlotIsReused(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})
	storage.Delete(first)

	reused := storage.Spawn(Position{X: 3})
	assert.Equal(t, first.Index(), reused.Index())
	assert.Equal(t, first.Generation()+1, reused.Generation())
	assert.NotEqual(t, first, reused)

	assert.False(t, storage.Alive(first), "stale id must not resolve to the new occupant")
	assert.Nil(t, ecs.ReadComponent[Position](storage, first))
	assert.False(t, storage.Delete(first))
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, reused).X)
}

func TestDeleteWithStableIndices(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id1 := storage.Spawn(Position{X: 1}, Velocity{DX: 0.1})
	id2 := storage.Spawn(Position{X: 2}, Velocity{DX: 0.2})
	id3 := storage.Spawn(Position{X: 3}, Velocity{DX: 0.3})

	require.True(t, storage.Delete(id2))
	assert.Nil(t, ecs.ReadComponent[Position](storage, id2))
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id1).X)
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, id3).X)

	id4 := storage.Spawn(Position{X: 4}, Velocity{DX: 0.4})
	assert.Equal(t, id2.Index(), id4.Index())
	assert.Equal(t, float32(0.4), ecs.ReadComponent[Velocity](storage, id4).DX)
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, id3).X)
	assert.Equal(t, 3, storage.Archetypes()[0].Len())
}

func TestInvalidEntityId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	fake := ecs.NewEntityId(id.ArchetypeId(), 9999)
	assert.False(t, storage.Alive(fake))
	assert.Nil(t, ecs.ReadComponent[Position](storage, fake))
	assert.False(t, storage.Delete(fake))
	assert.True(t, storage.Alive(id))
}

func TestSlotRetiredAfterLastGeneration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	const cycles = 600
	seen := make(map[ecs.EntityId]bool, cycles)
	for i := range cycles {
		id := storage.Spawn(Position{X: float32(i)})
		require.False(t, seen[id], "cycle %d reissued %#x", i, uint64(id))
		seen[id] = true
		require.True(t, storage.Delete(id))
	}

	for id := range seen {
		assert.False(t, storage.Alive(id))
	}

	// Slots 0 and 1 each carried 256 generations before being withdrawn.
	archetype := storage.Archetypes()[0]
	assert.Equal(t, 2, archetype.Retired())
	assert.Equal(t, 0, archetype.Len())

	next := storage.Spawn(Position{X: -1})
	assert.Equal(t, uint32(2), next.Index())
	assert.Equal(t, uint8(cycles-512), next.Generation())
	assert.False(t, seen[next])
}

func TestRespawnAcrossBlocks(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, 0, 200)
	for i := range 200 {
		ids = append(ids, storage.Spawn(Score(i)))
	}
	for i := 0; i < len(ids); i += 2 {
		require.True(t, storage.Delete(ids[i]))
	}

	fresh := make(map[uint32]ecs.EntityId)
	for i := range 100 {
		id := storage.Spawn(Score(1000 + i))
		assert.Equal(t, uint8(1), id.Generation())
		fresh[id.Index()] = id
	}
	assert.Len(t, fresh, 100)

	for i, old := range ids {
		if i%2 == 1 {
			assert.Equal(t, Score(i), *ecs.ReadComponent[Score](storage, old))
			continue
		}
		assert.False(t, storage.Alive(old))
		assert.True(t, storage.Alive(fresh[old.Index()]))
	}
	assert.Equal(t, 200, storage.Archetypes()[0].Len())
}

func TestSpawnManyAcrossBlocks(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, 0, 200)
	for i := range 200 {
		ids = append(ids, storage.Spawn(Score(i)))
	}

	for i, id := range ids {
		assert.Equal(t, Score(i), *ecs.ReadComponent[Score](storage, id))
	}
	assert.Equal(t, 200, storage.Archetypes()[0].Len())
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
	assert.Panics(t, func() { storage.Spawn(struct{ Unregistered int }{}) })
}

func TestReadSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var health *Health
	assert.False(t, storage.ReadSingleton(&health))

	storage.AddSingleton(Health{Current: 5, Max: 10})
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 5, health.Current)

	// Overwriting keeps previously handed out pointers valid.
	storage.AddSingleton(Health{Current: 7, Max: 10})
	assert.Equal(t, 7, health.Current)

	assert.Panics(t, func() { storage.ReadSingleton(health) })
}
