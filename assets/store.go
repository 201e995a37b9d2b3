// Package assets provides handle-addressed, reference-counted asset pools.
//
// A Store owns its values; callers hold small Handle values that can be
// copied freely and stored as ECS components. Handles are never reused, so a
// stale handle simply fails to resolve.
package assets

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Handle identifies one asset in a Store[T].
type Handle[T any] struct {
	id uint64
}

// ID returns the raw handle id. Zero is never a valid id.
func (h Handle[T]) ID() uint64 {
	return h.id
}

// IsZero reports whether h is the zero Handle.
func (h Handle[T]) IsZero() bool {
	return h.id == 0
}

type slot[T any] struct {
	value T
	refs  int
}

// Store is a pool of T values. The zero value is ready to use. A Store must
// not be copied after first use.
type Store[T any] struct {
	slots *intmap.Map[uint64, *slot[T]]
	// order lists live ids in insertion order; removed ids are compacted lazily.
	order  []uint64
	nextID uint64
}

func (s *Store[T]) init() {
	if s.slots == nil {
		s.slots = intmap.New[uint64, *slot[T]](16)
	}
}

// Add stores value and returns a handle holding one reference.
func (s *Store[T]) Add(value T) Handle[T] {
	s.init()
	s.nextID++
	id := s.nextID
	s.slots.Put(id, &slot[T]{value: value, refs: 1})
	s.order = append(s.order, id)
	return Handle[T]{id: id}
}

// Get returns a pointer to the value of h, or nil if h is not live.
func (s *Store[T]) Get(h Handle[T]) *T {
	if s.slots == nil {
		return nil
	}
	sl, ok := s.slots.Get(h.id)
	if !ok {
		return nil
	}
	return &sl.value
}

// Contains reports whether h is live.
func (s *Store[T]) Contains(h Handle[T]) bool {
	return s.Get(h) != nil
}

// Clone adds a reference to h and returns it. Cloning a dead handle returns
// the zero Handle.
func (s *Store[T]) Clone(h Handle[T]) Handle[T] {
	if s.slots == nil {
		return Handle[T]{}
	}
	sl, ok := s.slots.Get(h.id)
	if !ok {
		return Handle[T]{}
	}
	sl.refs++
	return h
}

// Release drops one reference to h and removes the asset when none remain.
// It reports whether the asset was removed.
func (s *Store[T]) Release(h Handle[T]) bool {
	if s.slots == nil {
		return false
	}
	sl, ok := s.slots.Get(h.id)
	if !ok {
		return false
	}
	sl.refs--
	if sl.refs > 0 {
		return false
	}
	s.slots.Del(h.id)
	s.compact()
	return true
}

// Remove deletes the asset regardless of outstanding references.
func (s *Store[T]) Remove(h Handle[T]) bool {
	if !s.Contains(h) {
		return false
	}
	s.slots.Del(h.id)
	s.compact()
	return true
}

// RefCount returns the number of references held on h, zero if dead.
func (s *Store[T]) RefCount(h Handle[T]) int {
	if s.slots == nil {
		return 0
	}
	sl, ok := s.slots.Get(h.id)
	if !ok {
		return 0
	}
	return sl.refs
}

// Len returns the number of live assets.
func (s *Store[T]) Len() int {
	if s.slots == nil {
		return 0
	}
	return s.slots.Len()
}

// IterMut yields every live asset in insertion order with a mutable pointer.
func (s *Store[T]) IterMut() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		if s.slots == nil {
			return
		}
		for _, id := range s.order {
			sl, ok := s.slots.Get(id)
			if !ok {
				continue
			}
			if !yield(Handle[T]{id: id}, &sl.value) {
				return
			}
		}
	}
}

// compact drops dead ids from order once they make up half of it.
func (s *Store[T]) compact() {
	if len(s.order) < 2*s.slots.Len() {
		return
	}
	live := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.slots.Get(id); ok {
			live = append(live, id)
		}
	}
	s.order = live
}
