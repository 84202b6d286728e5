package math

import m "math"

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

// A quaternion, used to represent rotational orientation.
type Quaternion Vec4

// A 4x4 column-major matrix, typically used to represent object transformations.
type Mat4 struct {
	Data [16]float32
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec3Zero() Vec3 {
	return Vec3{}
}

func NewVec3One() Vec3 {
	return Vec3{X: 1, Y: 1, Z: 1}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func NewQuatIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuatFromAxisAngle builds a rotation of angle radians around axis.
// The axis is assumed normalized.
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	half := float64(angle) * 0.5
	s := float32(m.Sin(half))
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(m.Cos(half)),
	}
}

func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

func (q Quaternion) ToMat4() Mat4 {
	out := NewMat4Identity()

	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	out.Data[0] = 1 - 2*(yy+zz)
	out.Data[1] = 2 * (xy + wz)
	out.Data[2] = 2 * (xz - wy)
	out.Data[4] = 2 * (xy - wz)
	out.Data[5] = 1 - 2*(xx+zz)
	out.Data[6] = 2 * (yz + wx)
	out.Data[8] = 2 * (xz + wy)
	out.Data[9] = 2 * (yz - wx)
	out.Data[10] = 1 - 2*(xx+yy)

	return out
}

func NewMat4Identity() Mat4 {
	return Mat4{Data: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.Data[k*4+col] * b.Data[row*4+k]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

func RadToDeg(rad float32) float32 {
	return rad * 180.0 / float32(m.Pi)
}

func DegToRad(deg float32) float32 {
	return deg * float32(m.Pi) / 180.0
}
