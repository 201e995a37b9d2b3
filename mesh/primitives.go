package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// cubeFaces lists each face normal with two in-plane axes whose cross product
// is the normal.
var cubeFaces = [6][3]mgl32.Vec3{
	{axisX, axisY, axisZ},
	{axisX.Mul(-1), axisZ, axisY},
	{axisY, axisZ, axisX},
	{axisY.Mul(-1), axisX, axisZ},
	{axisZ, axisX, axisY},
	{axisZ.Mul(-1), axisY, axisX},
}

// Cube returns an axis-aligned cube with the given edge length centered on the
// origin. Each face has its own four vertices so normals stay flat.
func Cube(size float32) Mesh {
	half := size / 2
	m := Mesh{
		Positions: make([]mgl32.Vec3, 0, 24),
		Normals:   make([]mgl32.Vec3, 0, 24),
		UVs:       make([]mgl32.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}

	for _, face := range cubeFaces {
		n, u, v := face[0], face[1].Mul(half), face[2].Mul(half)
		center := n.Mul(half)

		a := m.vertex(center.Sub(u).Sub(v), n, 0, 1)
		b := m.vertex(center.Add(u).Sub(v), n, 1, 1)
		c := m.vertex(center.Add(u).Add(v), n, 1, 0)
		d := m.vertex(center.Sub(u).Add(v), n, 0, 0)

		m.triangle(a, b, c)
		m.triangle(a, c, d)
	}
	return m
}

// UVSphere returns a latitude/longitude sphere with poles on the Y axis.
// sectors is the number of longitude slices, stacks the number of latitude
// bands.
func UVSphere(radius float32, sectors, stacks int) Mesh {
	if sectors < 3 || stacks < 2 {
		panic("UVSphere needs at least 3 sectors and 2 stacks")
	}

	m := Mesh{
		Positions: make([]mgl32.Vec3, 0, (sectors+1)*(stacks+1)),
		Normals:   make([]mgl32.Vec3, 0, (sectors+1)*(stacks+1)),
		UVs:       make([]mgl32.Vec2, 0, (sectors+1)*(stacks+1)),
		Indices:   make([]uint32, 0, 6*sectors*(stacks-1)),
	}

	sectorStep := 2 * math32.Pi / float32(sectors)
	stackStep := math32.Pi / float32(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		ring := math32.Cos(stackAngle)
		y := math32.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			n := mgl32.Vec3{ring * math32.Sin(sectorAngle), y, ring * math32.Cos(sectorAngle)}
			m.vertex(n.Mul(radius), n, float32(j)/float32(sectors), float32(i)/float32(stacks))
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors+1)
		for j := 0; j < sectors; j++ {
			if i != 0 {
				m.triangle(k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.triangle(k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}
	return m
}

// Torus returns a torus lying in the XZ plane. radius is the distance from the
// center to the middle of the tube and ringRadius the radius of the tube.
// segments subdivide the main ring and sides subdivide the tube.
func Torus(radius, ringRadius float32, segments, sides int) Mesh {
	if segments < 3 || sides < 3 {
		panic("Torus needs at least 3 segments and 3 sides")
	}

	m := Mesh{
		Positions: make([]mgl32.Vec3, 0, (segments+1)*(sides+1)),
		Normals:   make([]mgl32.Vec3, 0, (segments+1)*(sides+1)),
		UVs:       make([]mgl32.Vec2, 0, (segments+1)*(sides+1)),
		Indices:   make([]uint32, 0, 6*segments*sides),
	}

	segmentStep := 2 * math32.Pi / float32(segments)
	sideStep := 2 * math32.Pi / float32(sides)

	for seg := 0; seg <= segments; seg++ {
		theta := float32(seg) * segmentStep
		cosTheta, sinTheta := math32.Cos(theta), math32.Sin(theta)

		for side := 0; side <= sides; side++ {
			phi := float32(side) * sideStep
			cosPhi, sinPhi := math32.Cos(phi), math32.Sin(phi)

			reach := radius + ringRadius*cosPhi
			p := mgl32.Vec3{reach * cosTheta, ringRadius * sinPhi, reach * sinTheta}
			n := mgl32.Vec3{cosPhi * cosTheta, sinPhi, cosPhi * sinTheta}
			m.vertex(p, n, float32(seg)/float32(segments), float32(side)/float32(sides))
		}
	}

	stride := uint32(sides + 1)
	for seg := 0; seg < segments; seg++ {
		for side := 0; side < sides; side++ {
			a := uint32(seg)*stride + uint32(side)
			b := a + stride
			c := b + 1
			d := a + 1
			m.triangle(a, d, b)
			m.triangle(d, c, b)
		}
	}
	return m
}
