package onager

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TranslationVector is the displacement p of a child frame origin,
// expressed in parent coordinates.
type TranslationVector [3]float64

func TranslationFromVec3(v mgl64.Vec3) TranslationVector {
	return TranslationVector(v)
}

func (p TranslationVector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3(p)
}

// AsTransform returns xlt(p) = [1 0; -p× 1].
func (p TranslationVector) AsTransform() TransformationMatrix {
	return TransformationMatrix{
		1, 0, 0, 0, 0, 0,
		0, 1, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, p[2], -p[1], 1, 0, 0,
		-p[2], 0, p[0], 0, 1, 0,
		p[1], -p[0], 0, 0, 0, 1,
	}
}

// Skew returns the cross-product matrix p× as an mgl64 matrix.
func (p TranslationVector) Skew() mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -p[2], p[1]},
		mgl64.Vec3{p[2], 0, -p[0]},
		mgl64.Vec3{-p[1], p[0], 0},
	)
}

func (p TranslationVector) Add(other TranslationVector) TranslationVector {
	return TranslationVector{p[0] + other[0], p[1] + other[1], p[2] + other[2]}
}

func (p TranslationVector) Sub(other TranslationVector) TranslationVector {
	return TranslationVector{p[0] - other[0], p[1] - other[1], p[2] - other[2]}
}

func (p TranslationVector) Scale(s float64) TranslationVector {
	return TranslationVector{p[0] * s, p[1] * s, p[2] * s}
}

func (p TranslationVector) Neg() TranslationVector {
	return TranslationVector{-p[0], -p[1], -p[2]}
}

// Inverse of a pure translation is the opposite displacement.
func (p TranslationVector) Inverse() TranslationVector {
	return p.Neg()
}

// Compose returns xlt(p)·rot(E): translate first, then rotate the axes.
// In general this differs from E.Compose(p).
func (p TranslationVector) Compose(r RotationMatrix) TransformationMatrix {
	return p.AsTransform().Mul(r.AsTransform())
}

func (p TranslationVector) ApproxEqualThreshold(other TranslationVector, threshold float64) bool {
	return math.Abs(p[0]-other[0]) <= threshold &&
		math.Abs(p[1]-other[1]) <= threshold &&
		math.Abs(p[2]-other[2]) <= threshold
}
