package scene

// Key is a keyboard key the demo reacts to.
type Key uint8

const (
	KeyQ Key = iota
	KeyE
	KeyArrowUp
	KeyArrowDown
)

// Keys returns every Key the camera controller reads.
func Keys() []Key {
	return []Key{KeyQ, KeyE, KeyArrowUp, KeyArrowDown}
}

// KeyState answers whether any of a set of keys is held this frame.
type KeyState interface {
	AnyHeld(keys ...Key) bool
}

var (
	downKeys = []Key{KeyQ, KeyArrowDown}
	upKeys   = []Key{KeyE, KeyArrowUp}
)

// HeldKeys is a KeyState backed by a set. The zero value holds nothing.
type HeldKeys map[Key]bool

// AnyHeld reports whether any of keys is set in h.
func (h HeldKeys) AnyHeld(keys ...Key) bool {
	for _, k := range keys {
		if h[k] {
			return true
		}
	}
	return false
}
