package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and decodes a prefab YAML into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CameraSpec struct {
	Name string `yaml:"name"`
	// Speed is the free-pan scroll speed in pixels per tick.
	Speed float64 `yaml:"speed"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CursorSpec struct {
	Name        string `yaml:"name"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Color       string `yaml:"color"`
}

func LoadCursorSpec() (*CursorSpec, error) {
	spec, err := LoadSpec[CursorSpec]("cursor.yaml")
	if err != nil {
		return nil, err
	}
	if spec.FrameWidth <= 0 {
		spec.FrameWidth = 32
	}
	if spec.FrameHeight <= 0 {
		spec.FrameHeight = 32
	}
	return &spec, nil
}

type UnitSpec struct {
	Name string `yaml:"name"`
	// X and Y are the unit's starting sprite position in world pixels.
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
	// Script names the tengo patrol script under prefabs/scripts/.
	Script string `yaml:"script"`
}

func LoadUnitSpec() (*UnitSpec, error) {
	spec, err := LoadSpec[UnitSpec]("unit.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
