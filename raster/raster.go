// Package raster projects the scene into screen-space triangles.
//
// Build does the CPU half of rendering: transform, back-face cull, clip
// against the near and far planes, light each vertex and sort far to near.
// The result is drawn by the frontend with DrawTrianglesShader.
package raster

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/shapeshow/mesh"
	"github.com/plus3/shapeshow/scene"
)

const ambient = 0.15

// lumensPerUnit scales PointLight.Intensity to a unit irradiance.
const lumensPerUnit = 100

// View is a perspective camera resolved for one viewport.
type View struct {
	Eye      mgl32.Vec3
	Rotation mgl32.Quat
	FovY     float32
	Near     float32
	Far      float32
	Width    float32
	Height   float32
}

// NewView resolves cam and its transform for a width x height viewport.
func NewView(cam scene.Camera, t scene.Transform, width, height int) View {
	return View{
		Eye:      t.Translation,
		Rotation: t.Rotation,
		FovY:     cam.FovY,
		Near:     cam.Near,
		Far:      cam.Far,
		Width:    float32(width),
		Height:   float32(height),
	}
}

// Light is a point light in world space.
type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Radius    float32
}

// Shade returns the diffuse brightness in [ambient, 1] of a surface at p
// with unit normal n.
func (l Light) Shade(p, n mgl32.Vec3) float32 {
	toLight := l.Position.Sub(p)
	d := toLight.Len()
	if d < 1e-6 {
		return 1
	}
	lambert := max(0, n.Dot(toLight.Mul(1/d)))
	d2 := max(d*d, l.Radius*l.Radius)
	falloff := min(1, l.Intensity/(4*math32.Pi*d2*lumensPerUnit))
	return ambient + (1-ambient)*lambert*falloff
}

// Item is one mesh placed in the world.
type Item struct {
	Mesh      *mesh.Mesh
	Transform scene.Transform
	Material  scene.ShaderMaterial
}

// Triangle is a screen-space triangle. Points are in pixels with the origin
// at the top left.
type Triangle struct {
	Points [3]mgl32.Vec2
	// Colors are lit vertex colors, premultiplied-free RGB.
	Colors [3]mgl32.Vec3
	// Depth is the mean view-space distance, used for sorting.
	Depth float32
	// Item indexes the Item the triangle came from.
	Item int
}

// Build appends the visible triangles of items to dst[:0], sorted back to
// front, and returns the extended slice.
func Build(dst []Triangle, view View, light Light, items []Item) []Triangle {
	dst = dst[:0]
	if view.Width <= 0 || view.Height <= 0 {
		return dst
	}

	focal := 1 / math32.Tan(view.FovY/2)
	aspect := view.Width / view.Height
	toView := view.Rotation.Conjugate()

	for idx, item := range items {
		m := item.Mesh
		if m == nil {
			continue
		}

		for i := range m.TriangleCount() {
			ia, ib, ic := m.Triangle(i)
			corners := [3]uint32{ia, ib, ic}

			var world [3]mgl32.Vec3
			for k, c := range corners {
				world[k] = item.Transform.Apply(m.Positions[c])
			}

			face := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			if face.Dot(world[0].Sub(view.Eye)) >= 0 {
				continue
			}

			tri := Triangle{Item: idx}
			visible := true
			for k, c := range corners {
				p := toView.Rotate(world[k].Sub(view.Eye))
				dist := -p.Z()
				if dist < view.Near || dist > view.Far {
					visible = false
					break
				}

				ndcX := focal / aspect * p.X() / dist
				ndcY := focal * p.Y() / dist
				tri.Points[k] = mgl32.Vec2{
					(ndcX + 1) / 2 * view.Width,
					(1 - ndcY) / 2 * view.Height,
				}

				shade := light.Shade(world[k], item.Transform.ApplyNormal(m.Normals[c]))
				tri.Colors[k] = light.Color.Mul(shade)
				tri.Depth += dist / 3
			}
			if visible {
				dst = append(dst, tri)
			}
		}
	}

	slices.SortStableFunc(dst, func(a, b Triangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return dst
}
