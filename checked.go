package onager

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotOrthonormal          = errors.New("rotation is not orthonormal")
	ErrNotProperRotation       = errors.New("rotation determinant is not +1")
	ErrBlockStructure          = errors.New("transform does not have Plücker block structure")
	ErrNegativeMass            = errors.New("mass is negative")
	ErrNotPositiveSemiDefinite = errors.New("inertia tensor is not positive semi-definite")
	ErrNotFinite               = errors.New("inertia parameter is not finite")
)

// NewRotationMatrixChecked returns data as a RotationMatrix after checking
// that EᵀE = I and det E = +1 within tol.
func NewRotationMatrixChecked(data [9]float64, tol float64) (RotationMatrix, error) {
	r := RotationMatrix(data)
	if err := checkRotation(r, tol); err != nil {
		return RotationMatrix{}, err
	}
	return r, nil
}

// NewTransformationMatrixChecked returns data as a TransformationMatrix after
// checking that it is [E 0; B E] with E a proper rotation and EᵀB skew.
func NewTransformationMatrixChecked(data [36]float64, tol float64) (TransformationMatrix, error) {
	t := TransformationMatrix(data)
	dense := t.Dense()

	if !mat.EqualApprox(dense.Slice(0, 3, 3, 6), mat.NewDense(3, 3, nil), tol) {
		return TransformationMatrix{}, errors.Wrap(ErrBlockStructure, "top-right block is not zero")
	}
	if !mat.EqualApprox(dense.Slice(0, 3, 0, 3), dense.Slice(3, 6, 3, 6), tol) {
		return TransformationMatrix{}, errors.Wrap(ErrBlockStructure, "diagonal blocks differ")
	}
	if err := checkRotation(t.ToRotation(), tol); err != nil {
		return TransformationMatrix{}, errors.Wrap(err, "rotation block")
	}

	var s mat.Dense
	s.Mul(dense.Slice(0, 3, 0, 3).T(), dense.Slice(3, 6, 0, 3))
	var sym mat.Dense
	sym.Add(&s, s.T())
	if !mat.EqualApprox(&sym, mat.NewDense(3, 3, nil), tol) {
		return TransformationMatrix{}, errors.Wrap(ErrBlockStructure, "translation block is not E·skew(p)")
	}
	return t, nil
}

// NewInertiaChecked builds an Inertia after checking that every parameter is
// finite, mass ≥ 0 and that the tensor has no eigenvalue below -tol.
func NewInertiaChecked(mass, ixx, iyy, izz, ixy, ixz, iyz, tol float64) (Inertia, error) {
	for i, v := range [...]float64{mass, ixx, iyy, izz, ixy, ixz, iyz} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Inertia{}, errors.Wrapf(ErrNotFinite, "parameter %d is %v", i, v)
		}
	}
	if !(mass >= 0) {
		return Inertia{}, errors.Wrapf(ErrNegativeMass, "mass %v", mass)
	}
	in := NewInertia(mass, ixx, iyy, izz, ixy, ixz, iyz)

	tensor := mat.NewSymDense(3, []float64{
		ixx, ixy, ixz,
		ixy, iyy, iyz,
		ixz, iyz, izz,
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(tensor, false); !ok {
		return Inertia{}, errors.Wrap(ErrNotPositiveSemiDefinite, "eigen decomposition failed")
	}
	for _, v := range eig.Values(nil) {
		if !(v >= -tol) {
			return Inertia{}, errors.Wrapf(ErrNotPositiveSemiDefinite, "eigenvalue %v", v)
		}
	}
	return in, nil
}

func checkRotation(r RotationMatrix, tol float64) error {
	e := r.Dense()

	var gram mat.Dense
	gram.Mul(e.T(), e)
	if !mat.EqualApprox(&gram, mat.NewDiagDense(3, []float64{1, 1, 1}), tol) {
		return ErrNotOrthonormal
	}
	if det := mat.Det(e); math.Abs(det-1) > tol {
		return errors.Wrapf(ErrNotProperRotation, "det %v", det)
	}
	return nil
}
