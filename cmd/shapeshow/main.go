package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeshow/config"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/ecs/debugui"
	debugui_ebiten "github.com/plus3/shapeshow/ecs/debugui/ebiten"
	"github.com/plus3/shapeshow/frontend"
	"github.com/plus3/shapeshow/scene"
	"github.com/plus3/shapeshow/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("shapeshow failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	initial, _ := cfg.InitialShape()

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	debugui.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	storage.AddSingleton(debugui.ImguiInputState{})

	backend := debugui_ebiten.Install(storage, cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	scene.Setup(storage, cfg.Settings(), initial)

	scheduler := ecs.NewScheduler(storage)
	scene.RegisterSystems(scheduler, frontend.NewKeyboard(storage), &debugui.ImguiSystem{})

	ui.SpawnShapePicker(storage)
	if cfg.Debug.Stats {
		ui.SpawnStatsWindow(storage, scheduler)
	}

	renderer, err := frontend.NewRenderer(storage)
	if err != nil {
		return err
	}

	slog.Info("starting", "shape", initial, "config", configPath, "tps", cfg.Window.TPS)
	if err := ebiten.RunGame(frontend.NewGame(scheduler, backend, renderer, cfg.Window.TPS)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
