package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/shapeshow/assets"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/mesh"
)

// Spinner tags the active renderable.
type Spinner struct{}

// Model records which shape an entity's mesh was built from.
type Model struct {
	Shape Shape
}

// AlphaMode selects how the shader output is composited.
type AlphaMode uint8

const (
	AlphaOpaque AlphaMode = iota
	AlphaBlend
)

func (m AlphaMode) String() string {
	if m == AlphaBlend {
		return "blend"
	}
	return "opaque"
}

// ShaderMaterial is the uniform block bound to a renderable's shader.
type ShaderMaterial struct {
	Time      float32
	AlphaMode AlphaMode
}

// Camera is the perspective camera. Its orientation lives in the entity's
// Transform and is always derived from Target.
type Camera struct {
	Target mgl32.Vec3
	Up     mgl32.Vec3
	// FovY is the vertical field of view in radians.
	FovY float32
	Near float32
	Far  float32
}

// PointLight lights the scene from its entity's Transform translation.
type PointLight struct {
	Color     mgl32.Vec3
	Intensity float32
	Radius    float32
}

// Clock is advanced by ClockSystem, first thing every frame.
type Clock struct {
	Delta   float64
	Elapsed float64
}

// Settings carries the tunables the systems read each frame.
type Settings struct {
	SpinRate      float32
	CameraSpeed   float32
	CameraStart   mgl32.Vec3
	CameraTarget  mgl32.Vec3
	FovY          float32
	ShapePosition mgl32.Vec3
	AlphaMode     AlphaMode
	// ReleaseOrphans frees the old shape's mesh and material on swap.
	// Off, material blocks outlive their renderable and keep ticking.
	ReleaseOrphans bool
}

// DefaultSettings mirrors the defaults of the config package.
func DefaultSettings() Settings {
	return Settings{
		SpinRate:      1,
		CameraSpeed:   4,
		CameraStart:   mgl32.Vec3{0, 2, 0},
		CameraTarget:  mgl32.Vec3{0, 0, -5},
		FovY:          mgl32.DegToRad(45),
		ShapePosition: mgl32.Vec3{0, 0, -5},
		AlphaMode:     AlphaBlend,
	}
}

// Meshes and Materials are the asset pools stored as singletons.
type (
	Meshes    = assets.Store[mesh.Mesh]
	Materials = assets.Store[ShaderMaterial]
)

// Renderable is the view the renderer and the swap system read.
type Renderable struct {
	ecs.EntityId
	*Transform
	*Model
	Mesh     *assets.Handle[mesh.Mesh]
	Material *assets.Handle[ShaderMaterial]
}

// RegisterComponents registers every scene component type.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Spinner](registry)
	ecs.RegisterComponent[Model](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Camera](registry)
	ecs.RegisterComponent[PointLight](registry)
	ecs.RegisterComponent[assets.Handle[mesh.Mesh]](registry)
	ecs.RegisterComponent[assets.Handle[ShaderMaterial]](registry)
}
