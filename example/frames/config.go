package main

import (
	"io"
	"strings"

	"github.com/biomechanics-foundation/onager"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SceneConfig describes a serial chain of frames and the quantities carried
// through it.
type SceneConfig struct {
	Frames []FrameConfig `yaml:"frames"`
	Twist  [6]float64    `yaml:"twist"`
	Wrench [6]float64    `yaml:"wrench"`
	Body   *BodyConfig   `yaml:"body,omitempty"`
}

type FrameConfig struct {
	Name        string     `yaml:"name"`
	Axis        string     `yaml:"axis"`
	Angle       float64    `yaml:"angle"`
	Translation [3]float64 `yaml:"translation"`
}

// BodyConfig is a solid box attached to the last frame
type BodyConfig struct {
	Mass         float64    `yaml:"mass"`
	HalfExtents  [3]float64 `yaml:"half_extents"`
	CenterOfMass [3]float64 `yaml:"center_of_mass"`
}

// LoadScene decodes a YAML scene. Unknown keys are rejected.
func LoadScene(r io.Reader) (*SceneConfig, error) {
	var c SceneConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	for i, f := range c.Frames {
		if _, err := parseBasis(f.Axis); err != nil {
			return nil, errors.Wrapf(err, "frame %d (%s)", i, f.Name)
		}
	}
	return &c, nil
}

// Transform returns the parent-to-frame transform.
func (f FrameConfig) Transform() (onager.TransformationMatrix, error) {
	axis, err := parseBasis(f.Axis)
	if err != nil {
		return onager.TransformationMatrix{}, err
	}
	return onager.RotationFromAngle(axis, f.Angle).Compose(onager.TranslationFromR3(f.Origin())), nil
}

// Origin is the frame origin in parent coordinates.
func (f FrameConfig) Origin() r3.Vector {
	return r3.Vector{X: f.Translation[0], Y: f.Translation[1], Z: f.Translation[2]}
}

// Inertia returns the box inertia and its center of mass in the last frame.
func (b BodyConfig) Inertia() (onager.Inertia, onager.TranslationVector, error) {
	box := onager.BoxInertia(b.Mass, mgl64.Vec3(b.HalfExtents))
	in, err := onager.NewInertiaChecked(b.Mass, box.Ixx, box.Iyy, box.Izz, box.Ixy, box.Ixz, box.Iyz, 1e-12)
	if err != nil {
		return onager.Inertia{}, onager.TranslationVector{}, errors.Wrap(err, "body")
	}
	return in, onager.TranslationVector(b.CenterOfMass), nil
}

func parseBasis(s string) (onager.Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return onager.BasisX, nil
	case "y":
		return onager.BasisY, nil
	case "z":
		return onager.BasisZ, nil
	}
	return 0, errors.Errorf("unknown axis %q", s)
}
