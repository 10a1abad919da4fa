package component_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/gears/component"
	"github.com/plus3/gears/vmath"
	"github.com/stretchr/testify/assert"
)

func TestNewTransform(t *testing.T) {
	tr := component.NewTransform()
	assert.Equal(t, vmath.Vector3{}, tr.Position)
	assert.Equal(t, vmath.Identity(), tr.Rotation)
	assert.Equal(t, vmath.Vector3{X: 1, Y: 1, Z: 1}, tr.Scale)
	assert.Equal(t, mgl32.Ident4(), tr.Matrix())
}

func TestTransformMatrix(t *testing.T) {
	tr := component.NewTransform()
	tr.Position = vmath.Vector3{X: 1, Y: 2, Z: 3}
	tr.Scale = vmath.Vector3{X: 2, Y: 2, Z: 2}

	m := tr.Matrix()
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, m.Col(3))

	p := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec4{3, 4, 5, 1}, p)
}
