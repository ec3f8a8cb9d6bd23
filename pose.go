package onager

import "github.com/go-gl/mathgl/mgl64"

// Pose places a child frame in its parent: origin position and orientation,
// both in parent coordinates.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose creates an identity pose
func NewPose() Pose {
	return Pose{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Transform returns the parent-to-child Plücker transform of the pose.
func (p Pose) Transform() TransformationMatrix {
	return RotationFromQuat(p.Rotation).Compose(TranslationFromVec3(p.Position))
}

// PoseFromTransform is the inverse of Pose.Transform for a rigid t.
func PoseFromTransform(t TransformationMatrix) Pose {
	return Pose{
		Position: t.ToTranslation().Vec3(),
		Rotation: mgl64.Mat4ToQuat(t.ToRotation().Mat3().Mat4()),
	}
}
