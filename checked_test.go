package onager

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRotationMatrixChecked(t *testing.T) {
	tests := []struct {
		name    string
		data    [9]float64
		wantErr error
	}{
		{"identity", IdentRotation(), nil},
		{"elementary", RotationY(1.3), nil},
		{"scaled", RotationZ(0.5).Mul(RotationMatrix{2, 0, 0, 0, 2, 0, 0, 0, 2}), ErrNotOrthonormal},
		{"shear", [9]float64{1, 0.5, 0, 0, 1, 0, 0, 0, 1}, ErrNotOrthonormal},
		{"reflection", [9]float64{1, 0, 0, 0, 1, 0, 0, 0, -1}, ErrNotProperRotation},
		{"zero", [9]float64{}, ErrNotOrthonormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRotationMatrixChecked(tt.data, 1e-9)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, RotationMatrix(tt.data), r)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.Equal(t, RotationMatrix{}, r)
		})
	}
}

func TestNewTransformationMatrixChecked(t *testing.T) {
	rng := newRand(t)

	valid := randomRigid(rng)
	topRight := valid
	topRight[3] = 0.5
	diagonal := valid
	diagonal[35] += 0.1
	shear := IdentTransform()
	shear[19] = 1
	shear[24] = 1 // symmetric, not skew
	reflected := RotationMatrix{1, 0, 0, 0, 1, 0, 0, 0, -1}.AsTransform()

	tests := []struct {
		name    string
		data    [36]float64
		wantErr error
	}{
		{"identity", IdentTransform(), nil},
		{"rigid", valid, nil},
		{"translate then rotate", randomTranslation(rng).Compose(randomRotation(rng)), nil},
		{"top-right block", topRight, ErrBlockStructure},
		{"diagonal blocks differ", diagonal, ErrBlockStructure},
		{"bottom-left not skew", shear, ErrBlockStructure},
		{"reflection", reflected, ErrNotProperRotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := NewTransformationMatrixChecked(tt.data, 1e-9)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, TransformationMatrix(tt.data), x)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestNewInertiaChecked(t *testing.T) {
	tests := []struct {
		name    string
		params  [7]float64
		wantErr error
	}{
		{"box", [7]float64{12, 13, 10, 5, 0, 0, 0}, nil},
		{"point mass", [7]float64{1, 0, 0, 0, 0, 0, 0}, nil},
		{"products of inertia", [7]float64{2, 1, 2, 3, 0.1, 0.2, 0.3}, nil},
		{"negative mass", [7]float64{-1, 1, 1, 1, 0, 0, 0}, ErrNegativeMass},
		{"negative moment", [7]float64{1, -1, 1, 1, 0, 0, 0}, ErrNotPositiveSemiDefinite},
		{"indefinite", [7]float64{1, 1, 1, 1, 5, 0, 0}, ErrNotPositiveSemiDefinite},
		{"nan mass", [7]float64{math.NaN(), 1, 1, 1, 0, 0, 0}, ErrNotFinite},
		{"nan moment", [7]float64{1, math.NaN(), 1, 1, 0, 0, 0}, ErrNotFinite},
		{"nan product", [7]float64{1, 1, 1, 1, 0, 0, math.NaN()}, ErrNotFinite},
		{"infinite mass", [7]float64{math.Inf(1), 1, 1, 1, 0, 0, 0}, ErrNotFinite},
		{"infinite moment", [7]float64{1, 1, math.Inf(-1), 1, 0, 0, 0}, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.params
			in, err := NewInertiaChecked(p[0], p[1], p[2], p[3], p[4], p[5], p[6], 1e-12)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, NewInertia(p[0], p[1], p[2], p[3], p[4], p[5], p[6]), in)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
