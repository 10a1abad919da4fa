// Package vmath implements the single-precision vector and rotation math
// used by spatial components.
package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is a single-precision 3D vector value.
type Vector3 struct {
	X, Y, Z float32
}

// Up returns the scalar 0. It carries no direction and is kept only for
// compatibility with callers that expect a float result; use UpVector for
// the actual up axis.
func (Vector3) Up() float32 {
	return 0.0
}

// UpVector returns the unit vector along +Z.
func UpVector() Vector3 {
	return Vector3{X: 0, Y: 0, Z: 1}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector3) Magnitude() float32 {
	mag := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	return float32(math.Sqrt(float64(mag)))
}

// Normalize scales the vector to unit length in place.
// A zero vector is left untouched.
func (v *Vector3) Normalize() {
	length := v.Magnitude()
	if length == 0 {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// Scale multiplies every axis by s in place.
func (v *Vector3) Scale(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Mgl converts the vector to its mathgl representation.
func (v Vector3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vector3FromMgl converts a mathgl vector.
func Vector3FromMgl(v mgl32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) String() string {
	return fmt.Sprintf("{%s, %s, %s}", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}
