package ecs

import (
	"reflect"
	"unsafe"
)

// singletonEntry owns the heap cell of one singleton value. The cell never
// moves, so pointers handed out by Singleton.Get stay valid for the life of
// the Storage.
type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// AddSingleton stores value as the singleton of its dynamic type. An existing
// singleton of the same type is overwritten in place.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	cell := reflect.New(t)
	cell.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{
		value:   cell,
		dataPtr: cell.UnsafePointer(),
	}
}

// ReadSingleton points *target at the singleton of type T and reports whether
// it exists. target must be a **T.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Pointer {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	t := rv.Elem().Type().Elem()
	entry := s.getSingletonEntry(t)
	if entry == nil {
		return false
	}
	rv.Elem().Set(reflect.NewAt(t, entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// Singleton provides efficient access to a single component instance
// that is not associated with any entity. Use this for global game state,
// configuration, or other singleton data.
type Singleton[T any] struct {
	storage      *Storage
	componentPtr unsafe.Pointer
}

// NewSingleton returns an accessor for the T singleton, creating it from
// initializer (or the zero value) when it does not exist yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()

	if storage.getSingletonEntry(t) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	return &Singleton[T]{
		storage:      storage,
		componentPtr: storage.getSingletonEntry(t).dataPtr,
	}
}

// Init binds the Singleton to storage. Called by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentPtr = nil
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not
// been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return (*T)(s.componentPtr)
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.componentPtr = entry.dataPtr
	}
}
