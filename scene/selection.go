package scene

import (
	"log/slog"

	"github.com/plus3/shapeshow/assets"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/mesh"
)

// Selection tracks the displayed shape and the last shape the user picked.
// After ModelSwapSystem runs, Previous == Selected.
type Selection struct {
	Previous Shape
	Selected Shape
}

// Request records the user's pick. The swap happens on the next
// ModelSwapSystem pass.
func (s *Selection) Request(shape Shape) {
	s.Selected = shape
}

// Pending reports whether a swap is waiting.
func (s *Selection) Pending() bool {
	return s.Previous != s.Selected
}

// meshFor builds the mesh for shape. Every member of the shape set has an
// arm; Pyramid is deliberately unfinished.
func meshFor(shape Shape) mesh.Mesh {
	switch shape {
	case Cube:
		return mesh.Cube(1)
	case Sphere:
		return mesh.UVSphere(1, 50, 50)
	case Torus:
		return mesh.Torus(1, 0.5, 50, 50)
	case Pyramid:
		panic("scene: Pyramid mesh not yet implemented")
	default:
		panic("scene: unknown shape " + shape.String())
	}
}

// shapeBundle allocates a mesh and a fresh material block and returns the
// components of a new active renderable.
func shapeBundle(shape Shape, settings *Settings, elapsed float64, meshes *Meshes, materials *Materials) []any {
	m := meshFor(shape)
	t := TransformAt(settings.ShapePosition.X(), settings.ShapePosition.Y(), settings.ShapePosition.Z())
	return []any{
		Spinner{},
		Model{Shape: shape},
		t,
		meshes.Add(m),
		materials.Add(ShaderMaterial{Time: float32(elapsed), AlphaMode: settings.AlphaMode}),
	}
}

// ModelSwapSystem reconciles the displayed shape with Selection. On a
// pending swap it deletes every Spinner entity and spawns one for the
// selected shape; both land in the same command flush.
type ModelSwapSystem struct {
	Selection ecs.Singleton[Selection]
	Settings  ecs.Singleton[Settings]
	Clock     ecs.Singleton[Clock]
	Meshes    ecs.Singleton[Meshes]
	Materials ecs.Singleton[Materials]
	Spinners  ecs.Query[struct {
		ecs.EntityId
		*Spinner
		Mesh     *assets.Handle[mesh.Mesh]
		Material *assets.Handle[ShaderMaterial]
	}]
}

func (s *ModelSwapSystem) Execute(frame *ecs.UpdateFrame) {
	sel := s.Selection.Get()
	if !sel.Pending() {
		return
	}

	settings := s.Settings.Get()
	meshes, materials := s.Meshes.Get(), s.Materials.Get()

	// Build first so an unimplemented shape dies before anything is queued.
	bundle := shapeBundle(sel.Selected, settings, s.Clock.Get().Elapsed, meshes, materials)

	for old := range s.Spinners.Values() {
		frame.Commands.Delete(old.EntityId)
		if settings.ReleaseOrphans {
			meshes.Release(*old.Mesh)
			materials.Release(*old.Material)
		}
	}
	frame.Commands.Spawn(bundle...)

	slog.Info("swapped shape", "from", sel.Previous, "to", sel.Selected, "despawned", s.Spinners.Len())
	sel.Previous = sel.Selected
}
