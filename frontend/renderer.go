package frontend

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/raster"
	"github.com/plus3/shapeshow/scene"
)

//go:embed shaders/shape.kage
var shapeShader []byte

// blendOpacity is the coverage of a shape drawn with AlphaBlend.
const blendOpacity = 0.85

// maxVertices keeps each draw call within uint16 indices.
const maxVertices = 65535 / 3 * 3

// Renderer draws the scene's renderables through the shape shader.
type Renderer struct {
	shader   *ebiten.Shader
	gatherer *raster.Gatherer

	frame     raster.Frame
	triangles []raster.Triangle
	vertices  []ebiten.Vertex
	indices   []uint16
}

func NewRenderer(storage *ecs.Storage) (*Renderer, error) {
	shader, err := ebiten.NewShader(shapeShader)
	if err != nil {
		return nil, fmt.Errorf("compiling shape shader: %w", err)
	}
	return &Renderer{shader: shader, gatherer: raster.NewGatherer(storage)}, nil
}

// Draw rasterises the current world onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.gatherer.Gather(&r.frame)
	if !r.frame.HasCamera {
		return
	}

	bounds := screen.Bounds()
	view := raster.NewView(r.frame.Camera, r.frame.Eye, bounds.Dx(), bounds.Dy())
	r.triangles = raster.Build(r.triangles, view, r.frame.Light, r.frame.Items)

	// Triangles are depth sorted across items; flush whenever the item changes.
	current := -1
	for _, tri := range r.triangles {
		if tri.Item != current || len(r.vertices)+3 > maxVertices {
			r.flush(screen, current)
			current = tri.Item
		}
		base := uint16(len(r.vertices))
		for k, p := range tri.Points {
			c := tri.Colors[k]
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   p.X(),
				DstY:   p.Y(),
				ColorR: c.X(),
				ColorG: c.Y(),
				ColorB: c.Z(),
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	r.flush(screen, current)
}

func (r *Renderer) flush(screen *ebiten.Image, item int) {
	if len(r.indices) > 0 && item >= 0 {
		material := r.frame.Items[item].Material
		opacity := float32(1)
		if material.AlphaMode == scene.AlphaBlend {
			opacity = blendOpacity
		}

		screen.DrawTrianglesShader(r.vertices, r.indices, r.shader, &ebiten.DrawTrianglesShaderOptions{
			Uniforms: map[string]any{
				"Time":    material.Time,
				"Opacity": opacity,
			},
		})
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
