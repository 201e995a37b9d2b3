package ecs

const (
	indexBits = 24
	indexMask = 1<<indexBits - 1

	// maxGeneration is the last generation a slot can carry. A slot deleted
	// at this generation is retired instead of being handed out again.
	maxGeneration = 1<<8 - 1
)

// EntityId packs the archetype ID into the upper 32 bits. The lower 32 bits
// hold the slot index within that archetype (24 bits) and the slot's
// generation (8 bits), so an id held across a delete never resolves to the
// entity that later reuses the slot. Slots are retired rather than wrapped,
// so an id is never issued twice by the same Storage.
type EntityId uint64

// NewEntityId creates a generation-zero EntityId from an archetype ID and slot index
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	if index > indexMask {
		panic("entity index out of range")
	}
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e) & indexMask
}

// Generation returns how many times the slot had been freed when this id was issued.
func (e EntityId) Generation() uint8 {
	return uint8(uint32(e) >> indexBits)
}

func (e EntityId) withGeneration(gen uint8) EntityId {
	return EntityId(uint64(e.ArchetypeId())<<32 | uint64(gen)<<indexBits | uint64(e.Index()))
}
