package onager

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

func TranslationFromR3(v r3.Vector) TranslationVector {
	return TranslationVector{v.X, v.Y, v.Z}
}

func (p TranslationVector) R3() r3.Vector {
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}

// Dense copies the rotation into a gonum matrix.
func (r RotationMatrix) Dense() *mat.Dense {
	data := r
	return mat.NewDense(3, 3, data[:])
}

// Dense copies the transform into a gonum matrix.
func (t TransformationMatrix) Dense() *mat.Dense {
	data := t
	return mat.NewDense(6, 6, data[:])
}

// TransformFromDense reads a 6x6 gonum matrix. It panics if m is not 6x6.
func TransformFromDense(m mat.Matrix) TransformationMatrix {
	if r, c := m.Dims(); r != 6 || c != 6 {
		panic(mat.ErrShape)
	}
	var t TransformationMatrix
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			t[i*6+j] = m.At(i, j)
		}
	}
	return t
}
