package raster_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/shapeshow/ecs"
	"github.com/plus3/shapeshow/mesh"
	"github.com/plus3/shapeshow/raster"
	"github.com/plus3/shapeshow/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView() raster.View {
	return raster.View{
		Rotation: mgl32.QuatIdent(),
		FovY:     mgl32.DegToRad(45),
		Near:     0.1,
		Far:      100,
		Width:    800,
		Height:   600,
	}
}

var testLight = raster.Light{
	Position:  mgl32.Vec3{0, 1, 0},
	Color:     mgl32.Vec3{1, 1, 1},
	Intensity: 10000,
	Radius:    1,
}

func itemAt(m *mesh.Mesh, x, y, z float32) raster.Item {
	return raster.Item{Mesh: m, Transform: scene.TransformAt(x, y, z)}
}

func TestBuildCullsBackFaces(t *testing.T) {
	cube := mesh.Cube(1)
	tris := raster.Build(nil, testView(), testLight, []raster.Item{itemAt(&cube, 0, 0, -5)})

	// Head on, only the +Z face is visible.
	require.Len(t, tris, 2)

	var cx, cy float32
	for _, tri := range tris {
		for _, p := range tri.Points {
			assert.InDelta(t, 400, p.X(), 100)
			assert.InDelta(t, 300, p.Y(), 100)
			cx += p.X()
			cy += p.Y()
		}
		assert.InDelta(t, 4.5, tri.Depth, 1e-4)
	}
	assert.InDelta(t, 400, cx/6, 40)
	assert.InDelta(t, 300, cy/6, 40)
}

func TestBuildProjectsCorners(t *testing.T) {
	cube := mesh.Cube(1)
	tris := raster.Build(nil, testView(), testLight, []raster.Item{itemAt(&cube, 0, 0, -5)})

	focal := 1 / float32(0.41421356) // tan(22.5deg)
	wantX := (focal/(800.0/600.0)*0.5/4.5 + 1) / 2 * 800
	maxX := float32(0)
	for _, tri := range tris {
		for _, p := range tri.Points {
			maxX = max(maxX, p.X())
		}
	}
	assert.InDelta(t, wantX, maxX, 0.5)
}

func TestBuildDropsGeometryBehindCamera(t *testing.T) {
	cube := mesh.Cube(1)
	tris := raster.Build(nil, testView(), testLight, []raster.Item{itemAt(&cube, 0, 0, 5)})
	assert.Empty(t, tris)

	tris = raster.Build(nil, testView(), testLight, []raster.Item{itemAt(&cube, 0, 0, -500)})
	assert.Empty(t, tris, "beyond the far plane")
}

func TestBuildSortsBackToFront(t *testing.T) {
	cube := mesh.Cube(1)
	sphere := mesh.UVSphere(1, 16, 8)
	items := []raster.Item{
		itemAt(&cube, 0.5, 0, -4),
		itemAt(&sphere, -0.5, 0, -12),
	}

	tris := raster.Build(nil, testView(), testLight, items)
	require.NotEmpty(t, tris)
	assert.Equal(t, 1, tris[0].Item)
	assert.Equal(t, 0, tris[len(tris)-1].Item)
	for i := 1; i < len(tris); i++ {
		assert.GreaterOrEqual(t, tris[i-1].Depth, tris[i].Depth)
	}
}

func TestBuildReusesDst(t *testing.T) {
	cube := mesh.Cube(1)
	items := []raster.Item{itemAt(&cube, 0, 0, -5)}

	first := raster.Build(nil, testView(), testLight, items)
	second := raster.Build(first, testView(), testLight, items)
	assert.Equal(t, len(first), len(second))
	assert.Same(t, &first[0], &second[0])
}

func TestBuildEmptyViewport(t *testing.T) {
	cube := mesh.Cube(1)
	view := testView()
	view.Width = 0
	assert.Empty(t, raster.Build(nil, view, testLight, []raster.Item{itemAt(&cube, 0, 0, -5)}))
}

func TestLightShade(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	lit := testLight.Shade(mgl32.Vec3{0, 0, 0}, up)
	unlit := testLight.Shade(mgl32.Vec3{0, 0, 0}, down)

	assert.Greater(t, lit, unlit)
	assert.InDelta(t, 0.15, unlit, 1e-6)
	assert.LessOrEqual(t, lit, float32(1))

	far := testLight.Shade(mgl32.Vec3{0, -50, 0}, up)
	assert.Less(t, far, lit)
}

func TestGatherReadsWorld(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	settings := scene.DefaultSettings()
	scene.Setup(storage, settings, scene.Torus)

	var frame raster.Frame
	raster.NewGatherer(storage).Gather(&frame)

	require.True(t, frame.HasCamera)
	assert.Equal(t, settings.CameraStart, frame.Eye.Translation)
	assert.Equal(t, float32(10000), frame.Light.Intensity)
	require.Len(t, frame.Items, 1)
	assert.Equal(t, scene.AlphaBlend, frame.Items[0].Material.AlphaMode)

	view := raster.NewView(frame.Camera, frame.Eye, 1280, 720)
	tris := raster.Build(nil, view, frame.Light, frame.Items)
	assert.NotEmpty(t, tris)
	assert.Less(t, len(tris), frame.Items[0].Mesh.TriangleCount(), "some faces are culled")
}
