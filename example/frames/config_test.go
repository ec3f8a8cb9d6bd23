package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biomechanics-foundation/onager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadScene_Default(t *testing.T) {
	scene, err := LoadScene(bytes.NewReader(defaultScene))
	require.NoError(t, err)

	require.Len(t, scene.Frames, 4)
	assert.Equal(t, "shoulder", scene.Frames[1].Name)
	assert.Equal(t, [3]float64{0.4, 0, 0}, scene.Frames[2].Translation)
	require.NotNil(t, scene.Body)
	assert.Equal(t, 1.2, scene.Body.Mass)
}

func TestLoadScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown axis", "frames:\n  - name: a\n    axis: w\n"},
		{"unknown key", "frames: []\ngravity: [0, 0, -9.81]\n"},
		{"short translation", "frames:\n  - axis: x\n    translation: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestFrameConfig_Transform(t *testing.T) {
	frame := FrameConfig{Axis: "Y", Angle: 0.3, Translation: [3]float64{1, 2, 3}}

	x, err := frame.Transform()
	require.NoError(t, err)
	assert.Equal(t, onager.RotationY(0.3).Compose(onager.TranslationVector{1, 2, 3}), x)

	_, err = FrameConfig{Axis: "q"}.Transform()
	assert.Error(t, err)
}

func TestRun_PowerIsFrameInvariant(t *testing.T) {
	scene, err := LoadScene(bytes.NewReader(defaultScene))
	require.NoError(t, err)

	report, err := run(scene, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, report.Powers, len(scene.Frames)+1)
	for i, p := range report.Powers {
		assert.InDelta(t, report.Powers[0], p, 1e-9, "frame %d", i)
	}
	assert.Less(t, report.RoundTripError, 1e-9)
	assert.True(t, onager.MotionVec6(scene.Twist).Transform(report.Chain).ApproxEqualThreshold(report.Twist, 1e-9))
	assert.NotEqual(t, onager.ForceVec6{}, report.Momentum)
}

func TestRun_InvalidBody(t *testing.T) {
	scene := &SceneConfig{
		Twist: [6]float64{0, 0, 1, 0, 0, 0},
		Body:  &BodyConfig{Mass: -1, HalfExtents: [3]float64{1, 1, 1}},
	}

	_, err := run(scene, zap.NewNop())
	assert.ErrorIs(t, err, onager.ErrNegativeMass)
}

func TestRun_Reach(t *testing.T) {
	scene := &SceneConfig{
		Frames: []FrameConfig{
			{Name: "a", Axis: "z", Translation: [3]float64{1, 0, 0}},
			{Name: "b", Axis: "x", Translation: [3]float64{0, 2, 0}},
		},
		Twist: [6]float64{0, 0, 1, 0, 0, 0},
	}

	report, err := run(scene, zap.NewNop())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5), report.Reach, 1e-12)
}

func TestRealMain(t *testing.T) {
	require.NoError(t, realMain(nil, zap.NewNop()))

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames:\n  - axis: w\n"), 0o600))
	assert.Error(t, realMain([]string{path}, zap.NewNop()))

	err := realMain([]string{filepath.Join(t.TempDir(), "missing.yaml")}, zap.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
