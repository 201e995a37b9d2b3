package raster

import (
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/scene"
)

type cameraView struct {
	*scene.Camera
	*scene.Transform
}

type lightView struct {
	*scene.PointLight
	*scene.Transform
}

// Frame is everything Build needs, read out of the world.
type Frame struct {
	Camera    scene.Camera
	Eye       scene.Transform
	Light     Light
	HasCamera bool
	Items     []Item
}

// Gatherer reads renderables, the camera and the light from storage. The
// first camera and light found win.
type Gatherer struct {
	cameras     *ecs.View[cameraView]
	lights      *ecs.View[lightView]
	renderables *ecs.View[scene.Renderable]
	meshes      *ecs.Singleton[scene.Meshes]
	materials   *ecs.Singleton[scene.Materials]
}

func NewGatherer(storage *ecs.Storage) *Gatherer {
	return &Gatherer{
		cameras:     ecs.NewView[cameraView](storage),
		lights:      ecs.NewView[lightView](storage),
		renderables: ecs.NewView[scene.Renderable](storage),
		meshes:      ecs.NewSingleton[scene.Meshes](storage),
		materials:   ecs.NewSingleton[scene.Materials](storage),
	}
}

// Gather fills f, reusing its Items slice. Renderables whose mesh or
// material has been released are skipped.
func (g *Gatherer) Gather(f *Frame) {
	f.HasCamera = false
	for _, cam := range g.cameras.Iter() {
		f.Camera, f.Eye, f.HasCamera = *cam.Camera, *cam.Transform, true
		break
	}

	f.Light = Light{}
	for _, l := range g.lights.Iter() {
		f.Light = Light{
			Position:  l.Transform.Translation,
			Color:     l.PointLight.Color,
			Intensity: l.PointLight.Intensity,
			Radius:    l.PointLight.Radius,
		}
		break
	}

	f.Items = f.Items[:0]
	meshes, materials := g.meshes.Get(), g.materials.Get()
	for _, r := range g.renderables.Iter() {
		m := meshes.Get(*r.Mesh)
		mat := materials.Get(*r.Material)
		if m == nil || mat == nil {
			continue
		}
		f.Items = append(f.Items, Item{Mesh: m, Transform: *r.Transform, Material: *mat})
	}
}
