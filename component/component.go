// Package component holds the spatial data records attached to entities.
package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/gears/vmath"
)

// Transform is the spatial state of one entity.
type Transform struct {
	Position vmath.Vector3
	Rotation vmath.Quaternion
	Scale    vmath.Vector3
}

// Velocity is a per-axis linear rate in units per second.
type Velocity struct {
	DX, DY, DZ float32
}

// NewTransform returns a transform at the origin with no rotation and unit scale.
func NewTransform() Transform {
	return Transform{
		Rotation: vmath.Identity(),
		Scale:    vmath.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix composes translation, rotation and scale into a model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X, t.Position.Y, t.Position.Z)
	rotate := t.Rotation.Mgl().Mat4()
	scale := mgl32.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return translate.Mul4(rotate).Mul4(scale)
}
