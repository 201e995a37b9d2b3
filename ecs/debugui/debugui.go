// Package debugui runs Dear ImGui windows as ECS entities.
//
// Each window is an entity carrying an ImguiItem. ImguiSystem defers every
// item's Render to the end-of-frame command flush, so widgets draw after all
// systems have run and any state they change is seen on the next frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeshow/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton mirroring whether ImGui wants the mouse or
// keyboard this frame. Game input should back off while either is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and queues all ImguiItem render functions.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if !i.InputState.Exists() {
		frame.Storage.AddSingleton(ImguiInputState{})
	}
	state := i.InputState.Get()
	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	i.queueRenders(frame.Commands)
}

func (i *ImguiSystem) queueRenders(commands *ecs.Commands) {
	for item := range i.Items.Values() {
		if item.Render != nil {
			commands.Defer(item.Render)
		}
	}
}
