package onager

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// =============================================================================
// Fixtures
// =============================================================================

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(42))
}

func uniform(rng *rand.Rand, half float64) float64 {
	return (rng.Float64()*2 - 1) * half
}

func randomMotion(rng *rand.Rand) MotionVec6 {
	var m MotionVec6
	for i := range m {
		m[i] = uniform(rng, 5)
	}
	return m
}

func randomForce(rng *rand.Rand) ForceVec6 {
	var f ForceVec6
	for i := range f {
		f[i] = uniform(rng, 5)
	}
	return f
}

func randomRotation(rng *rand.Rand) RotationMatrix {
	return RotationX(uniform(rng, 3)).
		Mul(RotationY(uniform(rng, 3))).
		Mul(RotationZ(uniform(rng, 3)))
}

func randomTranslation(rng *rand.Rand) TranslationVector {
	return TranslationVector{uniform(rng, 2), uniform(rng, 2), uniform(rng, 2)}
}

// randomRigid returns rot(E)·xlt(p) for a random E and p.
func randomRigid(rng *rand.Rand) TransformationMatrix {
	return randomRotation(rng).Compose(randomTranslation(rng))
}

// =============================================================================
// Helpers
// =============================================================================

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Helper function to compare Vec3 with epsilon tolerance
func vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}
