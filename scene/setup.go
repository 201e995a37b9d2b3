package scene

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/shapeshow/ecs"
)

// Setup installs the scene singletons and spawns the camera, the light and
// the initial shape. Selection starts idle on initial.
func Setup(storage *ecs.Storage, settings Settings, initial Shape) ecs.EntityId {
	storage.AddSingleton(settings)
	storage.AddSingleton(Clock{})
	storage.AddSingleton(Selection{Previous: initial, Selected: initial})

	meshes := ecs.NewSingleton[Meshes](storage).Get()
	materials := ecs.NewSingleton[Materials](storage).Get()

	camera := TransformAt(settings.CameraStart.X(), settings.CameraStart.Y(), settings.CameraStart.Z())
	camera.LookAt(settings.CameraTarget, axisY)
	storage.Spawn(
		camera,
		Camera{Target: settings.CameraTarget, Up: axisY, FovY: settings.FovY, Near: 0.1, Far: 100},
	)

	storage.Spawn(
		TransformAt(0, 1, 0),
		PointLight{Color: mgl32.Vec3{1, 1, 1}, Intensity: 10000, Radius: 1},
	)

	id := storage.Spawn(shapeBundle(initial, &settings, 0, meshes, materials)...)
	slog.Debug("scene ready", "shape", initial, "entity", uint64(id))
	return id
}

// RegisterSystems registers the scene systems in frame order. ui systems run
// after the camera and before reconciliation so a pick made while drawing is
// seen by the swap on the following frame.
func RegisterSystems(scheduler *ecs.Scheduler, keys KeyState, ui ...ecs.System) {
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&SpinSystem{})
	scheduler.Register(&ShaderTimeSystem{})
	scheduler.Register(&CameraControlSystem{Keys: keys})
	for _, sys := range ui {
		scheduler.Register(sys)
	}
	scheduler.Register(&ModelSwapSystem{})
}
