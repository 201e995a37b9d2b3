package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/ecs/debugui"
	debugui_ebiten "github.com/plus3/shapeshow/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.Get().BeginFrame()

	// ImguiSystem defers the windows into the command flush at the end of Once
	g.scheduler.Once(1.0 / 60.0)

	g.imguiBackend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	backend := debugui_ebiten.Install(storage, "ECS ImGui Example", 1280, 720)

	debugui.Spawn(storage, func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from ECS!")
		imgui.End()
	})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	if err := ebiten.RunGame(&Game{scheduler: scheduler, imguiBackend: backend}); err != nil {
		panic(err)
	}
}
