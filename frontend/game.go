// Package frontend runs the scene in an Ebiten window.
package frontend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeshow/ecs"
	debugui_ebiten "github.com/plus3/shapeshow/ecs/debugui/ebiten"
)

var background = color.RGBA{R: 0x1c, G: 0x1f, B: 0x26, A: 0xff}

// Game implements ebiten.Game. Each Update runs one scheduler frame inside
// an ImGui frame; Draw renders the scene and overlays ImGui.
type Game struct {
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	renderer  *Renderer
	dt        float64
}

// NewGame builds a Game stepping the scheduler by 1/tps seconds per update.
func NewGame(scheduler *ecs.Scheduler, backend *ecs.Singleton[debugui_ebiten.ImguiBackend], renderer *Renderer, tps int) *Game {
	return &Game{
		scheduler: scheduler,
		backend:   backend,
		renderer:  renderer,
		dt:        1 / float64(tps),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.backend.Get().BeginFrame()
	g.scheduler.Once(g.dt)
	g.backend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.renderer.Draw(screen)
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
