// Package onager implements spatial vector algebra for rigid-body dynamics.
//
// Motion vectors (velocities, accelerations) and force vectors (forces,
// momenta) are 6-component values whose first three components are the
// angular part and the last three the linear part. They transform between
// coordinate frames through a 6x6 Plücker transform built from a rotation and
// a translation, and they pair through the dot product, which is the power
// delivered by a force on a motion and is frame invariant.
//
// Every type is a plain value: copy it freely, no method allocates or locks.
// Inputs are never validated on the arithmetic path; use the Checked
// constructors when the data comes from an untrusted source.
//
// Operator mapping:
//
//	a + b, a - b      Add, Sub (AddInPlace, SubInPlace)
//	v * s, v / s      Scale, Div (ScaleInPlace, DivInPlace)
//	f * m             ForceVec6.Dot, MotionVec6.Dot
//	v >> X            Transform, Rotate, Translate (TransformInPlace, RotateInPlace, TranslateInPlace)
//	a ^ b             CrossMotion, CrossForce
//	-v                Neg
//	!X                RotationMatrix.Transpose, TranslationVector.Inverse, TransformationMatrix.Inverse
//	E + p, p + E      RotationMatrix.Compose, TranslationVector.Compose
package onager
