package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/ecs/debugui"
	"github.com/plus3/shapeshow/scene"
)

// SpawnStatsWindow adds the performance window with the shape and asset
// counts of the scene.
func SpawnStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) ecs.EntityId {
	window := debugui.NewStatsWindow("Stats", 120)
	clock := ecs.NewSingleton[scene.Clock](storage)
	selection := ecs.NewSingleton[scene.Selection](storage)
	meshes := ecs.NewSingleton[scene.Meshes](storage)
	materials := ecs.NewSingleton[scene.Materials](storage)

	return debugui.Spawn(storage, func() {
		window.Record(float32(clock.Get().Delta))
		window.Render(storage, scheduler.GetStats(), func() {
			imgui.Text(fmt.Sprintf("Shape: %s", selection.Get().Previous))
			imgui.Text(fmt.Sprintf("Meshes: %d  Materials: %d", meshes.Get().Len(), materials.Get().Len()))
			imgui.Text(fmt.Sprintf("Elapsed: %.1f s", clock.Get().Elapsed))
		})
	})
}
