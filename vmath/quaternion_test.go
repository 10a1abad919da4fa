package vmath_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/plus3/gears/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuaternionIdentity(t *testing.T) {
	q := vmath.Identity()
	assert.Equal(t, vmath.Quaternion{W: 1}, q)
	assert.Equal(t, vmath.Vector3{}, q.EulerAngles())
	assert.Equal(t, q, q.Normalized())
}

func TestQuaternionIndex(t *testing.T) {
	q := vmath.NewQuaternion(0.5, 90, 90, 90)

	assert.Equal(t, float32(90), q.At(0))
	assert.Equal(t, float32(90), q.At(1))
	assert.Equal(t, float32(90), q.At(2))
	assert.Equal(t, float32(0.5), q.At(3))

	assert.PanicsWithError(t, "Index out of range, got 4.", func() {
		q.At(4)
	})
	assert.PanicsWithError(t, "Index out of range, got -1.", func() {
		q.At(-1)
	})

	_, err := q.Component(4)
	var indexErr *vmath.IndexError
	require.ErrorAs(t, err, &indexErr)
	assert.Equal(t, 4, indexErr.Index)
}

func TestQuaternionString(t *testing.T) {
	q := vmath.NewQuaternion(0.5, 90, 90, 90)
	assert.Equal(t, "{90, 90, 90, 0.5}", q.String())
	assert.Equal(t, "{90, 90, 90, 0.5}", fmt.Sprint(q))
	assert.Equal(t, "{0, 0, 0, 1}", vmath.Identity().String())
}

func TestQuaternionEulerRoundTrip(t *testing.T) {
	angles := []vmath.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: -1.2, Y: 0.7, Z: 2.5},
		{X: math.Pi / 4, Y: -math.Pi / 6, Z: math.Pi / 3},
		{X: 3, Y: 1.5, Z: -3},
	}

	for _, e := range angles {
		t.Run(e.String(), func(t *testing.T) {
			got := vmath.QuaternionFromEuler(e).EulerAngles()
			assert.InDelta(t, e.X, got.X, 1e-4)
			assert.InDelta(t, e.Y, got.Y, 1e-4)
			assert.InDelta(t, e.Z, got.Z, 1e-4)
		})
	}
}

func TestQuaternionGimbalLock(t *testing.T) {
	// sin(pitch) evaluates to 2 and -2, outside the asin domain
	up := vmath.NewQuaternion(1, 0, 1, 0).EulerAngles()
	assert.Equal(t, float32(math.Pi/2), up.Y)

	down := vmath.NewQuaternion(1, 0, -1, 0).EulerAngles()
	assert.Equal(t, float32(-math.Pi/2), down.Y)

	pole := vmath.QuaternionFromEuler(vmath.Vector3{Y: math.Pi / 2}).EulerAngles()
	assert.InDelta(t, math.Pi/2, pole.Y, 1e-3)
	assert.False(t, math.IsNaN(float64(pole.Y)))
}

func TestQuaternionFromEuler(t *testing.T) {
	q := vmath.QuaternionFromEuler(vmath.Vector3{Z: math.Pi / 2})
	assert.InDelta(t, math.Cos(math.Pi/4), q.W, 1e-6)
	assert.InDelta(t, 0, q.X, 1e-6)
	assert.InDelta(t, 0, q.Y, 1e-6)
	assert.InDelta(t, math.Sin(math.Pi/4), q.Z, 1e-6)

	var set vmath.Quaternion
	set.SetFromEuler(vmath.Vector3{Z: math.Pi / 2})
	assert.Equal(t, q, set)
}

func TestQuaternionSet(t *testing.T) {
	q := vmath.Identity()
	q.Set(0.1, 0.2, 0.3, 0.4)
	assert.Equal(t, vmath.Quaternion{W: 0.1, X: 0.2, Y: 0.3, Z: 0.4}, q)
}

func TestQuaternionNormalized(t *testing.T) {
	q := vmath.NewQuaternion(2, 0, 0, 0).Normalized()
	assert.Equal(t, vmath.Identity(), q)

	n := vmath.NewQuaternion(1, 2, 3, 4).Normalized()
	assert.InDelta(t, 1.0, vmath.Dot(n, n), 1e-6)

	zero := vmath.Quaternion{}.Normalized()
	assert.True(t, math.IsNaN(float64(zero.W)))
	assert.True(t, math.IsNaN(float64(zero.X)))
}

func TestQuaternionDot(t *testing.T) {
	a := vmath.NewQuaternion(1, 2, 3, 4)
	b := vmath.NewQuaternion(5, 6, 7, 8)
	assert.Equal(t, float32(70), vmath.Dot(a, b))
	assert.Equal(t, vmath.Dot(a, b), vmath.Dot(b, a))
}

func TestQuaternionAngle(t *testing.T) {
	a := vmath.NewQuaternion(1, 0, 0, 0)
	b := vmath.NewQuaternion(0, 1, 0, 0)
	assert.InDelta(t, math.Pi/2, vmath.Angle(a, b), 1e-6)

	// the degree factor pushes acos out of its domain for any real overlap
	assert.True(t, math.IsNaN(float64(vmath.Angle(a, a))))
}

func TestQuaternionAngleAxis(t *testing.T) {
	q := vmath.AngleAxis(0.5, vmath.Vector3{X: 1, Y: 2, Z: 4})
	assert.InDelta(t, math.Cos(0.5), q.W, 1e-6)
	assert.Equal(t, float32(0.5), q.X)
	assert.Equal(t, float32(1), q.Y)
	assert.Equal(t, float32(2), q.Z)
}

func TestQuaternionRotate(t *testing.T) {
	q := vmath.QuaternionFromEuler(vmath.Vector3{Z: math.Pi / 2})
	v := q.Rotate(vmath.Vector3{X: 1})
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 1, v.Y, 1e-6)
	assert.InDelta(t, 0, v.Z, 1e-6)

	assert.Equal(t, q, vmath.QuaternionFromMgl(q.Mgl()))
}
