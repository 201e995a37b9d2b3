package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// componentStorage is a type-erased column of components inside an archetype.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	// Retire clears index without making it available to Append again.
	Retire(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to storage factories. Each Storage
// owns one registry, so independent worlds never share component columns.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers T as a component type. Every type passed to
// Storage.Spawn must be registered first.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

// Registered reports whether t has a storage factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newStorage(t reflect.Type) componentStorage {
	factory, ok := r.factories[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return factory()
}

const blockSize = 64

// blockStorage keeps components of one type in fixed-size blocks so pointers
// handed out by Get stay valid when the column grows.
type blockStorage[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

func (cs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		panic(fmt.Sprintf("component %T stored in column of %s", item, reflect.TypeFor[T]()))
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/blockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([blockSize]T))
			cs.filled = append(cs.filled, new([blockSize]bool))
		}
	}

	cs.blocks[index/blockSize][index%blockSize] = value
	cs.filled[index/blockSize][index%blockSize] = true
	cs.count++
	return index
}

func (cs *blockStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Delete(index int) {
	if cs.clear(index) {
		cs.freeSlots = append(cs.freeSlots, index)
	}
}

func (cs *blockStorage[T]) Retire(index int) {
	cs.clear(index)
}

func (cs *blockStorage[T]) clear(index int) bool {
	if !cs.Has(index) {
		return false
	}
	var zero T
	cs.blocks[index/blockSize][index%blockSize] = zero
	cs.filled[index/blockSize][index%blockSize] = false
	cs.count--
	return true
}

func (cs *blockStorage[T]) Has(index int) bool {
	if index < 0 || index >= cs.nextIndex {
		return false
	}
	return cs.filled[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Len() int {
	return cs.count
}

func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if !cs.filled[i/blockSize][i%blockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
