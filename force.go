package onager

import "github.com/go-gl/mathgl/mgl64"

// ForceVec6 is a spatial force vector (force, momentum).
// Components 0-2 are angular (moment), 3-5 linear.
type ForceVec6 [6]float64

// NewForceVec6 builds a force vector from its moment and linear parts
func NewForceVec6(angular, linear mgl64.Vec3) ForceVec6 {
	return ForceVec6{angular[0], angular[1], angular[2], linear[0], linear[1], linear[2]}
}

func (f *ForceVec6) raw() *[6]float64 {
	return (*[6]float64)(f)
}

func (f ForceVec6) Angular() mgl64.Vec3 {
	return mgl64.Vec3{f[0], f[1], f[2]}
}

func (f ForceVec6) Linear() mgl64.Vec3 {
	return mgl64.Vec3{f[3], f[4], f[5]}
}

// Dot returns the power of this force acting on m. f.Dot(m) == m.Dot(f).
func (f ForceVec6) Dot(m MotionVec6) float64 {
	return dot6(f.raw(), m.raw())
}

func (f ForceVec6) Scale(s float64) ForceVec6 {
	return ForceVec6{f[0] * s, f[1] * s, f[2] * s, f[3] * s, f[4] * s, f[5] * s}
}

func (f *ForceVec6) ScaleInPlace(s float64) {
	for i := range f {
		f[i] *= s
	}
}

// Div divides every component by s. Division by zero yields ±Inf or NaN.
func (f ForceVec6) Div(s float64) ForceVec6 {
	return ForceVec6{f[0] / s, f[1] / s, f[2] / s, f[3] / s, f[4] / s, f[5] / s}
}

func (f *ForceVec6) DivInPlace(s float64) {
	for i := range f {
		f[i] /= s
	}
}

func (f ForceVec6) Add(other ForceVec6) ForceVec6 {
	return ForceVec6{
		f[0] + other[0], f[1] + other[1], f[2] + other[2],
		f[3] + other[3], f[4] + other[4], f[5] + other[5],
	}
}

func (f *ForceVec6) AddInPlace(other ForceVec6) {
	for i := range f {
		f[i] += other[i]
	}
}

func (f ForceVec6) Sub(other ForceVec6) ForceVec6 {
	return ForceVec6{
		f[0] - other[0], f[1] - other[1], f[2] - other[2],
		f[3] - other[3], f[4] - other[4], f[5] - other[5],
	}
}

func (f *ForceVec6) SubInPlace(other ForceVec6) {
	for i := range f {
		f[i] -= other[i]
	}
}

func (f ForceVec6) Neg() ForceVec6 {
	return ForceVec6{-f[0], -f[1], -f[2], -f[3], -f[4], -f[5]}
}

// Transform expresses the force in the frame reached through t, using the
// dual (force) form of t.
func (f ForceVec6) Transform(t TransformationMatrix) ForceVec6 {
	return transformForce(f.raw(), &t)
}

func (f *ForceVec6) TransformInPlace(t TransformationMatrix) {
	*f = transformForce(f.raw(), &t)
}

func (f ForceVec6) Rotate(r RotationMatrix) ForceVec6 {
	return f.Transform(r.AsTransform())
}

func (f ForceVec6) Translate(p TranslationVector) ForceVec6 {
	return f.Transform(p.AsTransform())
}

func (f *ForceVec6) RotateInPlace(r RotationMatrix) {
	f.TransformInPlace(r.AsTransform())
}

func (f *ForceVec6) TranslateInPlace(p TranslationVector) {
	f.TransformInPlace(p.AsTransform())
}

// CrossForce applies the force cross product with f in the motion slot.
func (f ForceVec6) CrossForce(other ForceVec6) ForceVec6 {
	return crossForce(f.raw(), other.raw())
}

// CrossMotion applies the motion cross product with f in the motion slot.
func (f ForceVec6) CrossMotion(m MotionVec6) MotionVec6 {
	return crossMotion(f.raw(), m.raw())
}

// CrossInPlace replaces f with f.CrossForce(other).
func (f *ForceVec6) CrossInPlace(other ForceVec6) {
	*f = crossForce(f.raw(), other.raw())
}

func (f ForceVec6) ApproxEqualThreshold(other ForceVec6, threshold float64) bool {
	return approxEqual6(f.raw(), other.raw(), threshold)
}
