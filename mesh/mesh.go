// Package mesh builds indexed triangle meshes for the primitive shapes.
//
// Generators are pure and deterministic. Triangles are wound counter-clockwise
// when viewed from outside the surface, and normals point outward.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Mesh is an indexed triangle list. Positions, Normals and UVs are parallel.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corner indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// Bounds returns the axis-aligned min and max corners of all positions.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := range 3 {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

func (m *Mesh) vertex(p, n mgl32.Vec3, u, v float32) uint32 {
	m.Positions = append(m.Positions, p)
	m.Normals = append(m.Normals, n)
	m.UVs = append(m.UVs, mgl32.Vec2{u, v})
	return uint32(len(m.Positions) - 1)
}

func (m *Mesh) triangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}
