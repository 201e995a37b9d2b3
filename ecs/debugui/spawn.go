package debugui

import "github.com/plus3/shapeshow/ecs"

// RegisterComponents registers the component types this package spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Spawn adds an entity that draws render every frame.
func Spawn(storage *ecs.Storage, render func()) ecs.EntityId {
	return storage.Spawn(ImguiItem{Render: render})
}
