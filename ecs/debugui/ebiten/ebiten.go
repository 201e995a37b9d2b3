// Package ebiten connects debugui to the Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeshow/ecs"
)

// ImguiBackend wraps the Ebiten Dear ImGui backend. It is stored as a
// singleton so the game loop and any system can reach it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Install creates the backend and its window, disables imgui.ini, and stores
// the backend in storage. The returned singleton stays valid for the life of
// storage.
func Install(storage *ecs.Storage, title string, width, height int) *ecs.Singleton[ImguiBackend] {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return ecs.NewSingleton[ImguiBackend](storage, ImguiBackend{EbitenBackend: backend})
}
