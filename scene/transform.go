package scene

import "github.com/go-gl/mathgl/mgl32"

var (
	axisY   = mgl32.Vec3{0, 1, 0}
	forward = mgl32.Vec3{0, 0, -1}
)

// Transform places an entity in world space. The local forward axis is -Z.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// TransformAt returns an unrotated, unit-scale transform at (x, y, z).
func TransformAt(x, y, z float32) Transform {
	return Transform{
		Translation: mgl32.Vec3{x, y, z},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// RotateY rotates the transform about the world vertical axis.
func (t *Transform) RotateY(angle float32) {
	t.Rotation = mgl32.QuatRotate(angle, axisY).Mul(t.Rotation).Normalize()
}

// LookAt turns the transform so its forward axis points at target, keeping
// its local up as close to up as possible. A target on the up axis through
// the translation leaves the rotation untouched.
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	back := t.Translation.Sub(target)
	if back.Len() < 1e-6 {
		return
	}
	back = back.Normalize()

	right := up.Cross(back)
	if right.Len() < 1e-6 {
		return
	}
	right = right.Normalize()
	trueUp := back.Cross(right)

	t.Rotation = mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, trueUp, back).Mat4()).Normalize()
}

// Forward returns the world direction of the local -Z axis.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(forward)
}

// Apply maps a local-space point into world space.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{p.X() * t.Scale.X(), p.Y() * t.Scale.Y(), p.Z() * t.Scale.Z()}
	return t.Rotation.Rotate(scaled).Add(t.Translation)
}

// ApplyNormal rotates a local-space normal into world space. Scale is
// assumed uniform.
func (t Transform) ApplyNormal(n mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(n)
}

// Matrix returns the model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
