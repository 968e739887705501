package core

import "github.com/go-gl/mathgl/mgl64"

// Quaternion represents a camera or object orientation. The teacher's Vec3
// carried an Euler-angle Rotate method; the camera model here needs proper
// quaternion composition (for interpolating orientation across the
// time-sampled camera), so this wraps mgl64.Quat instead.
type Quaternion struct {
	q mgl64.Quat
}

// IdentityQuaternion returns the "no rotation" orientation.
func IdentityQuaternion() Quaternion {
	return Quaternion{q: mgl64.QuatIdent()}
}

// QuaternionFromAxisAngle builds a rotation of angle radians around axis.
func QuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	return Quaternion{q: mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z})}
}

// Rotate applies the quaternion's rotation to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	r := q.q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{r[0], r[1], r[2]}
}

// Slerp spherically interpolates between q and other at parameter t in [0,1],
// used by the time-sampled camera to produce motion blur across a shutter
// interval.
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	return Quaternion{q: mgl64.QuatSlerp(q.q, other.q, t)}
}

// Mul composes two rotations: applying q.Mul(other) to a vector is
// equivalent to applying other first, then q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{q: q.q.Mul(other.q)}
}
