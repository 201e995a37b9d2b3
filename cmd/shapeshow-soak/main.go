package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/scene"
)

// swappable are the shapes with a mesh; Pyramid would end the run.
var swappable = []scene.Shape{scene.Cube, scene.Sphere, scene.Torus}

type spinnerView struct {
	*scene.Spinner
	*scene.Model
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	swapEvery := flag.Int("swap-every", 30, "Request a random shape every N frames.")
	seed := flag.Uint64("seed", 1, "Seed for shape and key choices.")
	releaseOrphans := flag.Bool("release-orphans", false, "Free the old mesh and material on every swap.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *swapEvery <= 0 {
		log.Fatalf("-swap-every must be positive, got %d", *swapEvery)
	}

	log.Println("Starting shapeshow soak...")

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	settings := scene.DefaultSettings()
	settings.ReleaseOrphans = *releaseOrphans
	scene.Setup(storage, settings, scene.Cube)

	keys := scene.HeldKeys{}
	scheduler := ecs.NewScheduler(storage)
	scene.RegisterSystems(scheduler, keys)

	selection := ecs.NewSingleton[scene.Selection](storage)
	materials := ecs.NewSingleton[scene.Materials](storage)
	meshes := ecs.NewSingleton[scene.Meshes](storage)
	spinners := ecs.NewView[spinnerView](storage)
	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	report := &Report{
		Duration:       *duration,
		SwapEvery:      *swapEvery,
		ReleaseOrphans: *releaseOrphans,
		GCPauseMetrics: *gcPauseMetrics,
	}
	report.Begin()

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if frame%*swapEvery == 0 {
			sel := selection.Get()
			next := swappable[rng.IntN(len(swappable))]
			if next != sel.Previous {
				report.Swaps++
			}
			sel.Request(next)
		}
		if frame%60 == 0 {
			keys[scene.KeyE] = rng.IntN(2) == 0
			keys[scene.KeyQ] = rng.IntN(2) == 0
		}

		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		scheduler.Once(deltaTime.Seconds())
		report.FrameTimes.Add(time.Since(updateStart))
		report.Frames++

		if n := spinners.Count(); n != 1 {
			report.Violations++
			log.Printf("frame %d: %d spinners alive", frame, n)
			continue
		}
		for s := range spinners.Values() {
			if s.Model.Shape != selection.Get().Selected {
				report.Violations++
				log.Printf("frame %d: showing %s, selected %s", frame, s.Model.Shape, selection.Get().Selected)
			}
		}
	}

	report.Elapsed = time.Since(startTime)
	report.LiveMaterials = materials.Get().Len()
	report.LiveMeshes = meshes.Get().Len()
	report.Scheduler = scheduler.GetStats()
	report.End()

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		log.Fatalf("%d frames broke the one-spinner invariant", report.Violations)
	}
}
