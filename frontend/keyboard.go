package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/ecs/debugui"
	"github.com/plus3/shapeshow/scene"
)

var keyMap = map[scene.Key]ebiten.Key{
	scene.KeyQ:         ebiten.KeyQ,
	scene.KeyE:         ebiten.KeyE,
	scene.KeyArrowUp:   ebiten.KeyArrowUp,
	scene.KeyArrowDown: ebiten.KeyArrowDown,
}

// Keyboard reads held keys from Ebiten. Keys are ignored while ImGui has
// keyboard focus.
type Keyboard struct {
	input *ecs.Singleton[debugui.ImguiInputState]
}

// NewKeyboard returns a Keyboard that consults the ImGui input state kept in storage.
func NewKeyboard(storage *ecs.Storage) *Keyboard {
	return &Keyboard{input: ecs.NewSingleton[debugui.ImguiInputState](storage)}
}

// AnyHeld reports whether any of keys is pressed this frame. It always
// reports false while an ImGui widget wants the keyboard.
func (k *Keyboard) AnyHeld(keys ...scene.Key) bool {
	if state := k.input.Get(); state != nil && state.WantCaptureKeyboard {
		return false
	}
	for _, key := range keys {
		if ek, ok := keyMap[key]; ok && ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}
