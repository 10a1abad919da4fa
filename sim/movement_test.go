package sim_test

import (
	"testing"

	"github.com/plus3/gears/component"
	"github.com/plus3/gears/sim"
	"github.com/plus3/gears/vmath"
	"github.com/stretchr/testify/assert"
)

func TestUpdatePositions(t *testing.T) {
	t.Run("applies velocity per axis", func(t *testing.T) {
		tr := component.NewTransform()
		sim.UpdatePositions(&tr, component.Velocity{DX: 1, DY: -2, DZ: 4}, 0.5)
		assert.Equal(t, vmath.Vector3{X: 0.5, Y: -1, Z: 2}, tr.Position)
	})

	t.Run("zero dt leaves position unchanged", func(t *testing.T) {
		tr := component.NewTransform()
		tr.Position = vmath.Vector3{X: 3, Y: 4, Z: 5}
		sim.UpdatePositions(&tr, component.Velocity{DX: 9, DY: 9, DZ: 9}, 0)
		assert.Equal(t, vmath.Vector3{X: 3, Y: 4, Z: 5}, tr.Position)
	})

	t.Run("rotation and scale untouched", func(t *testing.T) {
		tr := component.NewTransform()
		sim.UpdatePositions(&tr, component.Velocity{DX: 1, DY: 1, DZ: 1}, 1)
		assert.Equal(t, vmath.Identity(), tr.Rotation)
		assert.Equal(t, vmath.Vector3{X: 1, Y: 1, Z: 1}, tr.Scale)
	})
}
