package onager

import "github.com/go-gl/mathgl/mgl64"

// Inertia is a rigid body's mass and rotational inertia tensor about a
// body-fixed frame. The tensor is symmetric; only its six independent
// components are stored. Positive semi-definiteness is not checked.
type Inertia struct {
	Mass float64
	Ixx  float64
	Iyy  float64
	Izz  float64
	Ixy  float64
	Ixz  float64
	Iyz  float64
}

// InverseInertia holds the parameters of the inverse inertia operator,
// with the same layout as Inertia.
type InverseInertia struct {
	Mass float64
	Ixx  float64
	Iyy  float64
	Izz  float64
	Ixy  float64
	Ixz  float64
	Iyz  float64
}

func NewInertia(mass, ixx, iyy, izz, ixy, ixz, iyz float64) Inertia {
	return Inertia{Mass: mass, Ixx: ixx, Iyy: iyy, Izz: izz, Ixy: ixy, Ixz: ixz, Iyz: iyz}
}

func NewInverseInertia(mass, ixx, iyy, izz, ixy, ixz, iyz float64) InverseInertia {
	return InverseInertia{Mass: mass, Ixx: ixx, Iyy: iyy, Izz: izz, Ixy: ixy, Ixz: ixz, Iyz: iyz}
}

// NewInertiaFromTensor reads the upper triangle of tensor.
func NewInertiaFromTensor(mass float64, tensor mgl64.Mat3) Inertia {
	return Inertia{
		Mass: mass,
		Ixx:  tensor.At(0, 0),
		Iyy:  tensor.At(1, 1),
		Izz:  tensor.At(2, 2),
		Ixy:  tensor.At(0, 1),
		Ixz:  tensor.At(0, 2),
		Iyz:  tensor.At(1, 2),
	}
}

// BoxInertia returns the inertia of a solid box about its center.
func BoxInertia(mass float64, halfExtents mgl64.Vec3) Inertia {
	// Full dimensions
	x := halfExtents.X() * 2
	y := halfExtents.Y() * 2
	z := halfExtents.Z() * 2

	// I = (m/12) * (d1² + d2²)
	factor := mass / 12.0
	return NewInertia(mass, factor*(y*y+z*z), factor*(x*x+z*z), factor*(x*x+y*y), 0, 0, 0)
}

// SphereInertia returns the inertia of a solid sphere about its center.
func SphereInertia(mass, radius float64) Inertia {
	i := (2.0 / 5.0) * mass * radius * radius
	return NewInertia(mass, i, i, i, 0, 0, 0)
}

// Tensor returns the full symmetric 3x3 tensor
func (in Inertia) Tensor() mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{in.Ixx, in.Ixy, in.Ixz},
		mgl64.Vec3{in.Ixy, in.Iyy, in.Iyz},
		mgl64.Vec3{in.Ixz, in.Iyz, in.Izz},
	)
}

// MotionMul returns the force produced by the inertia acting on motion, for
// a body whose center of mass sits at centerOfMass. The angular part is the
// tensor applied to ω, the linear part is mass·(ω × c).
func (in Inertia) MotionMul(motion MotionVec6, centerOfMass TranslationVector) ForceVec6 {
	w := motion
	c := centerOfMass

	return ForceVec6{
		in.Ixx*w[0] + in.Ixy*w[1] + in.Ixz*w[2],
		in.Ixy*w[0] + in.Iyy*w[1] + in.Iyz*w[2],
		in.Ixz*w[0] + in.Iyz*w[1] + in.Izz*w[2],
		in.Mass * (w[1]*c[2] - w[2]*c[1]),
		in.Mass * (w[2]*c[0] - w[0]*c[2]),
		in.Mass * (w[0]*c[1] - w[1]*c[0]),
	}
}

// Rotate expresses the tensor in the frame reached through r: E·I·Eᵀ.
func (in Inertia) Rotate(r RotationMatrix) Inertia {
	e := r.Mat3().Transpose()
	return NewInertiaFromTensor(in.Mass, e.Mul3(in.Tensor()).Mul3(e.Transpose()))
}

// Inverse returns 1/mass and the inverted tensor. A singular tensor inverts
// to zero, the convention mgl64 uses, and infinite mass to zero mass.
func (in Inertia) Inverse() InverseInertia {
	inv := in.Tensor().Inv()
	return InverseInertia{
		Mass: 1.0 / in.Mass,
		Ixx:  inv.At(0, 0),
		Iyy:  inv.At(1, 1),
		Izz:  inv.At(2, 2),
		Ixy:  inv.At(0, 1),
		Ixz:  inv.At(0, 2),
		Iyz:  inv.At(1, 2),
	}
}

func (in InverseInertia) Tensor() mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{in.Ixx, in.Ixy, in.Ixz},
		mgl64.Vec3{in.Ixy, in.Iyy, in.Iyz},
		mgl64.Vec3{in.Ixz, in.Iyz, in.Izz},
	)
}
