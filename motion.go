package onager

import "github.com/go-gl/mathgl/mgl64"

// MotionVec6 is a spatial motion vector (velocity, acceleration).
// Components 0-2 are angular, 3-5 linear.
type MotionVec6 [6]float64

// NewMotionVec6 builds a motion vector from its angular and linear parts
func NewMotionVec6(angular, linear mgl64.Vec3) MotionVec6 {
	return MotionVec6{angular[0], angular[1], angular[2], linear[0], linear[1], linear[2]}
}

func (m *MotionVec6) raw() *[6]float64 {
	return (*[6]float64)(m)
}

// Angular returns the rotational part
func (m MotionVec6) Angular() mgl64.Vec3 {
	return mgl64.Vec3{m[0], m[1], m[2]}
}

// Linear returns the translational part
func (m MotionVec6) Linear() mgl64.Vec3 {
	return mgl64.Vec3{m[3], m[4], m[5]}
}

// Dot returns the power of a force acting on this motion.
func (m MotionVec6) Dot(f ForceVec6) float64 {
	return dot6(m.raw(), f.raw())
}

func (m MotionVec6) Scale(s float64) MotionVec6 {
	return MotionVec6{m[0] * s, m[1] * s, m[2] * s, m[3] * s, m[4] * s, m[5] * s}
}

func (m *MotionVec6) ScaleInPlace(s float64) {
	for i := range m {
		m[i] *= s
	}
}

// Div divides every component by s. Division by zero yields ±Inf or NaN.
func (m MotionVec6) Div(s float64) MotionVec6 {
	return MotionVec6{m[0] / s, m[1] / s, m[2] / s, m[3] / s, m[4] / s, m[5] / s}
}

func (m *MotionVec6) DivInPlace(s float64) {
	for i := range m {
		m[i] /= s
	}
}

func (m MotionVec6) Add(other MotionVec6) MotionVec6 {
	return MotionVec6{
		m[0] + other[0], m[1] + other[1], m[2] + other[2],
		m[3] + other[3], m[4] + other[4], m[5] + other[5],
	}
}

func (m *MotionVec6) AddInPlace(other MotionVec6) {
	for i := range m {
		m[i] += other[i]
	}
}

func (m MotionVec6) Sub(other MotionVec6) MotionVec6 {
	return MotionVec6{
		m[0] - other[0], m[1] - other[1], m[2] - other[2],
		m[3] - other[3], m[4] - other[4], m[5] - other[5],
	}
}

func (m *MotionVec6) SubInPlace(other MotionVec6) {
	for i := range m {
		m[i] -= other[i]
	}
}

func (m MotionVec6) Neg() MotionVec6 {
	return MotionVec6{-m[0], -m[1], -m[2], -m[3], -m[4], -m[5]}
}

// Transform expresses the motion in the frame reached through t.
func (m MotionVec6) Transform(t TransformationMatrix) MotionVec6 {
	return transformMotion(m.raw(), &t)
}

func (m *MotionVec6) TransformInPlace(t TransformationMatrix) {
	*m = transformMotion(m.raw(), &t)
}

// Rotate is Transform with a pure rotation.
func (m MotionVec6) Rotate(r RotationMatrix) MotionVec6 {
	return m.Transform(r.AsTransform())
}

// Translate is Transform with a pure translation.
func (m MotionVec6) Translate(p TranslationVector) MotionVec6 {
	return m.Transform(p.AsTransform())
}

func (m *MotionVec6) RotateInPlace(r RotationMatrix) {
	m.TransformInPlace(r.AsTransform())
}

func (m *MotionVec6) TranslateInPlace(p TranslationVector) {
	m.TransformInPlace(p.AsTransform())
}

// CrossMotion is the motion cross product m×other. m.CrossMotion(m) is zero.
func (m MotionVec6) CrossMotion(other MotionVec6) MotionVec6 {
	return crossMotion(m.raw(), other.raw())
}

// CrossForce is the force cross product m×*f, the rate of change of a force
// carried by a frame moving with velocity m.
func (m MotionVec6) CrossForce(f ForceVec6) ForceVec6 {
	return crossForce(m.raw(), f.raw())
}

// CrossInPlace replaces m with m×other.
func (m *MotionVec6) CrossInPlace(other MotionVec6) {
	*m = crossMotion(m.raw(), other.raw())
}

// ApproxEqualThreshold reports whether every component differs by at most threshold.
func (m MotionVec6) ApproxEqualThreshold(other MotionVec6, threshold float64) bool {
	return approxEqual6(m.raw(), other.raw(), threshold)
}
