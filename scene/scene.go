// Package scene loads the entities a loop is seeded with at startup.
package scene

import (
	"fmt"
	"os"

	"github.com/plus3/gears/component"
	"github.com/plus3/gears/vmath"
	"gopkg.in/yaml.v3"
)

// Seed is the initial component bundle of one moving entity.
type Seed struct {
	Transform component.Transform
	Velocity  component.Velocity
}

// Entry is one entity in a scene file. Omitted rotation means identity,
// omitted scale means (1, 1, 1).
type Entry struct {
	Name          string    `yaml:"name"`
	Position      []float32 `yaml:"position"`
	RotationEuler []float32 `yaml:"rotation_euler"` // roll, pitch, yaw in radians
	Scale         []float32 `yaml:"scale"`
	Velocity      []float32 `yaml:"velocity"`
}

// Default returns the single entity a loop starts with when no scene is given.
func Default() []Seed {
	return []Seed{{
		Transform: component.NewTransform(),
		Velocity:  component.Velocity{DX: 1, DY: 1, DZ: 1},
	}}
}

// Load reads a YAML list of entries.
func Load(path string) ([]Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML list of entries.
func Parse(raw []byte) ([]Seed, error) {
	var entries []Entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	seeds := make([]Seed, 0, len(entries))
	for i, e := range entries {
		seed, err := e.seed()
		if err != nil {
			return nil, fmt.Errorf("scene entry %d (%s): %w", i, e.Name, err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func (e Entry) seed() (Seed, error) {
	seed := Seed{Transform: component.NewTransform()}

	if e.Position != nil {
		v, err := vector("position", e.Position)
		if err != nil {
			return Seed{}, err
		}
		seed.Transform.Position = v
	}
	if e.RotationEuler != nil {
		v, err := vector("rotation_euler", e.RotationEuler)
		if err != nil {
			return Seed{}, err
		}
		seed.Transform.Rotation = vmath.QuaternionFromEuler(v)
	}
	if e.Scale != nil {
		v, err := vector("scale", e.Scale)
		if err != nil {
			return Seed{}, err
		}
		seed.Transform.Scale = v
	}
	if e.Velocity != nil {
		v, err := vector("velocity", e.Velocity)
		if err != nil {
			return Seed{}, err
		}
		seed.Velocity = component.Velocity{DX: v.X, DY: v.Y, DZ: v.Z}
	}

	return seed, nil
}

func vector(field string, values []float32) (vmath.Vector3, error) {
	if len(values) != 3 {
		return vmath.Vector3{}, fmt.Errorf("%s needs 3 values, got %d", field, len(values))
	}
	return vmath.Vector3{X: values[0], Y: values[1], Z: values[2]}, nil
}
