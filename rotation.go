package onager

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationMatrix is a 3x3 coordinate rotation E, stored row-major. E maps
// coordinates expressed in a parent frame to coordinates in a child frame
// rotated relative to it, so E is the transpose of the child's orientation
// matrix. Orthonormality is not checked; see NewRotationMatrixChecked.
type RotationMatrix [9]float64

// IdentRotation returns the identity rotation
func IdentRotation() RotationMatrix {
	return RotationMatrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationFromAngle returns the coordinate rotation for a frame turned by
// angle radians (right-handed) about a principal axis.
func RotationFromAngle(axis Basis, angle float64) RotationMatrix {
	s, c := math.Sincos(angle)

	switch axis {
	case BasisX:
		return RotationMatrix{
			1, 0, 0,
			0, c, s,
			0, -s, c,
		}
	case BasisY:
		return RotationMatrix{
			c, 0, -s,
			0, 1, 0,
			s, 0, c,
		}
	case BasisZ:
		return RotationMatrix{
			c, s, 0,
			-s, c, 0,
			0, 0, 1,
		}
	}
	panic(fmt.Sprintf("onager: unknown basis %d", int(axis)))
}

func RotationX(angle float64) RotationMatrix {
	return RotationFromAngle(BasisX, angle)
}

func RotationY(angle float64) RotationMatrix {
	return RotationFromAngle(BasisY, angle)
}

func RotationZ(angle float64) RotationMatrix {
	return RotationFromAngle(BasisZ, angle)
}

// RotationFromMat3 converts an orientation matrix (columns are the child
// axes in parent coordinates, as produced by mgl64) into a coordinate
// rotation. mgl64 stores column-major, so the raw array of the orientation
// is already the row-major array of its transpose.
func RotationFromMat3(orientation mgl64.Mat3) RotationMatrix {
	return RotationMatrix(orientation)
}

// RotationFromQuat converts an orientation quaternion into a coordinate rotation.
func RotationFromQuat(q mgl64.Quat) RotationMatrix {
	return RotationFromMat3(q.Mat4().Mat3())
}

// Mat3 returns the orientation matrix, the inverse of RotationFromMat3.
func (r RotationMatrix) Mat3() mgl64.Mat3 {
	return mgl64.Mat3(r)
}

// At returns the element at row, col.
func (r RotationMatrix) At(row, col int) float64 {
	return r[row*3+col]
}

// Apply returns E·v, the coordinates of v in the rotated frame.
func (r RotationMatrix) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		r[0]*v[0] + r[1]*v[1] + r[2]*v[2],
		r[3]*v[0] + r[4]*v[1] + r[5]*v[2],
		r[6]*v[0] + r[7]*v[1] + r[8]*v[2],
	}
}

func (r RotationMatrix) Mul(other RotationMatrix) RotationMatrix {
	return RotationMatrix{
		r[0]*other[0] + r[1]*other[3] + r[2]*other[6],
		r[0]*other[1] + r[1]*other[4] + r[2]*other[7],
		r[0]*other[2] + r[1]*other[5] + r[2]*other[8],
		r[3]*other[0] + r[4]*other[3] + r[5]*other[6],
		r[3]*other[1] + r[4]*other[4] + r[5]*other[7],
		r[3]*other[2] + r[4]*other[5] + r[5]*other[8],
		r[6]*other[0] + r[7]*other[3] + r[8]*other[6],
		r[6]*other[1] + r[7]*other[4] + r[8]*other[7],
		r[6]*other[2] + r[7]*other[5] + r[8]*other[8],
	}
}

func (r RotationMatrix) Transpose() RotationMatrix {
	return RotationMatrix{
		r[0], r[3], r[6],
		r[1], r[4], r[7],
		r[2], r[5], r[8],
	}
}

// Inverse is Transpose, exact for orthonormal input only.
func (r RotationMatrix) Inverse() RotationMatrix {
	return r.Transpose()
}

func (r RotationMatrix) Det() float64 {
	return r[0]*(r[4]*r[8]-r[5]*r[7]) -
		r[1]*(r[3]*r[8]-r[5]*r[6]) +
		r[2]*(r[3]*r[7]-r[4]*r[6])
}

// AsTransform embeds the rotation as a Plücker transform with no translation.
func (r RotationMatrix) AsTransform() TransformationMatrix {
	return TransformationMatrix{
		r[0], r[1], r[2], 0, 0, 0,
		r[3], r[4], r[5], 0, 0, 0,
		r[6], r[7], r[8], 0, 0, 0,
		0, 0, 0, r[0], r[1], r[2],
		0, 0, 0, r[3], r[4], r[5],
		0, 0, 0, r[6], r[7], r[8],
	}
}

// Compose returns rot(E)·xlt(p): the transform to a child frame whose origin
// sits at p (parent coordinates) and whose axes are rotated by E.
func (r RotationMatrix) Compose(p TranslationVector) TransformationMatrix {
	return r.AsTransform().Mul(p.AsTransform())
}

func (r RotationMatrix) ApproxEqualThreshold(other RotationMatrix, threshold float64) bool {
	for i := range r {
		if math.Abs(r[i]-other[i]) > threshold {
			return false
		}
	}
	return true
}
