// Package ui builds the demo's ImGui windows on top of debugui.
package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/ecs/debugui"
	"github.com/plus3/shapeshow/scene"
)

// SpawnShapePicker adds the dropdown that requests a shape swap. The
// request is only recorded; ModelSwapSystem applies it next frame.
func SpawnShapePicker(storage *ecs.Storage) ecs.EntityId {
	selection := ecs.NewSingleton[scene.Selection](storage)

	return debugui.Spawn(storage, func() {
		sel := selection.Get()

		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
		imgui.BeginV("Shape", nil, imgui.WindowFlagsAlwaysAutoResize)
		if imgui.BeginCombo("##shape", sel.Selected.String()) {
			for _, shape := range scene.Shapes() {
				picked := shape == sel.Selected
				if imgui.SelectableBoolV(shape.String(), picked, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
					sel.Request(shape)
				}
				if picked {
					imgui.SetItemDefaultFocus()
				}
			}
			imgui.EndCombo()
		}
		imgui.End()
	})
}
