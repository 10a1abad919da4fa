package vmath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// degreesPerRadian is the factor Angle multiplies into its acos argument.
const degreesPerRadian = 57.29578

// Quaternion represents a rotation. Components are not kept normalized;
// call Normalized when a unit quaternion is required.
type Quaternion struct {
	W, X, Y, Z float32
}

// IndexError reports an out of range component index.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Index out of range, got %d.", e.Index)
}

// Identity returns the rotation that does nothing, (w=1, x=0, y=0, z=0).
func Identity() Quaternion {
	return Quaternion{W: 1, X: 0, Y: 0, Z: 0}
}

// NewQuaternion builds a quaternion from its components.
func NewQuaternion(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromEuler builds a quaternion from roll (X), pitch (Y) and
// yaw (Z) angles in radians.
func QuaternionFromEuler(v Vector3) Quaternion {
	x, y, z, w := eulerToQuaternion(v.X, v.Y, v.Z)
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// EulerAngles returns roll, pitch and yaw in radians as X, Y and Z.
func (q Quaternion) EulerAngles() Vector3 {
	roll, pitch, yaw := quaternionToEuler(q.W, q.X, q.Y, q.Z)
	return Vector3{X: roll, Y: pitch, Z: yaw}
}

// Normalized returns q divided by its length. A zero quaternion yields NaN
// components.
func (q Quaternion) Normalized() Quaternion {
	n := float32(math.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)))
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Set overwrites all four components.
func (q *Quaternion) Set(w, x, y, z float32) {
	q.W = w
	q.X = x
	q.Y = y
	q.Z = z
}

// SetFromEuler overwrites q with the rotation described by v.
func (q *Quaternion) SetFromEuler(v Vector3) {
	q.X, q.Y, q.Z, q.W = eulerToQuaternion(v.X, v.Y, v.Z)
}

// Angle returns acos(min(|dot(a, b)|, 1) * 2 * 57.29578).
//
// The degree factor is applied inside acos, so the result is NaN as soon
// as |dot| exceeds roughly 0.0087. Callers relying on a true angle between
// rotations should not use this.
func Angle(a, b Quaternion) float32 {
	f := Dot(a, b)
	c := min(float32(math.Abs(float64(f))), 1.0)
	return float32(math.Acos(float64(c * 2.0 * degreesPerRadian)))
}

// AngleAxis returns (w=cos(angle), xyz=axis*angle). The axis is not
// normalized and no half angle is taken, so the result is generally not a
// unit quaternion.
func AngleAxis(angle float32, axis Vector3) Quaternion {
	return Quaternion{
		W: float32(math.Cos(float64(angle))),
		X: axis.X * angle,
		Y: axis.Y * angle,
		Z: axis.Z * angle,
	}
}

// Dot returns the four-component dot product of a and b.
func Dot(a, b Quaternion) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Component returns x, y, z, w for indices 0 through 3.
func (q Quaternion) Component(i int) (float32, error) {
	switch i {
	case 0:
		return q.X, nil
	case 1:
		return q.Y, nil
	case 2:
		return q.Z, nil
	case 3:
		return q.W, nil
	}
	return 0, &IndexError{Index: i}
}

// At is Component for trusted indices. It panics with an *IndexError when
// i is outside 0..3.
func (q Quaternion) At(i int) float32 {
	c, err := q.Component(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Rotate applies q to v. q is expected to be a unit quaternion.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return Vector3FromMgl(q.Mgl().Rotate(v.Mgl()))
}

// Mgl converts the quaternion to its mathgl representation.
func (q Quaternion) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuaternionFromMgl converts a mathgl quaternion.
func QuaternionFromMgl(q mgl32.Quat) Quaternion {
	return Quaternion{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

// String renders the quaternion as {x, y, z, w}.
func (q Quaternion) String() string {
	return fmt.Sprintf("{%s, %s, %s, %s}", formatFloat(q.X), formatFloat(q.Y), formatFloat(q.Z), formatFloat(q.W))
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func eulerToQuaternion(x, y, z float32) (float32, float32, float32, float32) {
	cy := float32(math.Cos(float64(z * 0.5)))
	sy := float32(math.Sin(float64(z * 0.5)))
	cp := float32(math.Cos(float64(y * 0.5)))
	sp := float32(math.Sin(float64(y * 0.5)))
	cr := float32(math.Cos(float64(x * 0.5)))
	sr := float32(math.Sin(float64(x * 0.5)))

	qw := cr*cp*cy + sr*sp*sy
	qx := sr*cp*cy - cr*sp*sy
	qy := cr*sp*cy + sr*cp*sy
	qz := cr*cp*sy - sr*sp*cy

	return qx, qy, qz, qw
}

func quaternionToEuler(w, x, y, z float32) (float32, float32, float32) {
	// roll (x-axis rotation)
	sinrCosp := 2.0 * (w*x + y*z)
	cosrCosp := 1.0 - 2.0*(x*x+y*y)
	roll := math.Atan2(float64(sinrCosp), float64(cosrCosp))

	// pitch (y-axis rotation), clamped to 90 degrees at the poles
	var pitch float64
	sinp := float64(2.0 * (w*y - z*x))
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	// yaw (z-axis rotation)
	sinyCosp := 2.0 * (w*z + x*y)
	cosyCosp := 1.0 - 2.0*(y*y+z*z)
	yaw := math.Atan2(float64(sinyCosp), float64(cosyCosp))

	return float32(roll), float32(pitch), float32(yaw)
}
