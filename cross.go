package onager

import "math"

// Shared kernels for the two dual vector types. Both types store the same
// layout, angular part first, so the bilinear forms only differ by which
// blocks they couple.

func dot6(a, b *[6]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] + a[4]*b[4] + a[5]*b[5]
}

// crossMotion is the motion cross product a×b:
// [wa×wb, wa×vb + va×wb].
func crossMotion(a, b *[6]float64) [6]float64 {
	return [6]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		a[1]*b[5] - a[2]*b[4] + a[4]*b[2] - a[5]*b[1],
		a[2]*b[3] - a[0]*b[5] + a[5]*b[0] - a[3]*b[2],
		a[0]*b[4] - a[1]*b[3] + a[3]*b[1] - a[4]*b[0],
	}
}

// crossForce is the force cross product a×*b:
// [wa×nb + va×fb, wa×fb].
func crossForce(a, b *[6]float64) [6]float64 {
	return [6]float64{
		a[1]*b[2] - a[2]*b[1] + a[4]*b[5] - a[5]*b[4],
		a[2]*b[0] - a[0]*b[2] + a[5]*b[3] - a[3]*b[5],
		a[0]*b[1] - a[1]*b[0] + a[3]*b[4] - a[4]*b[3],
		a[1]*b[5] - a[2]*b[4],
		a[2]*b[3] - a[0]*b[5],
		a[0]*b[4] - a[1]*b[3],
	}
}

// transformMotion applies X = [E 0; B E] to a motion vector. The top-right
// block is assumed zero and never read.
func transformMotion(v *[6]float64, t *TransformationMatrix) [6]float64 {
	var out [6]float64
	for i := 0; i < 3; i++ {
		row := i * 6
		out[i] = t[row]*v[0] + t[row+1]*v[1] + t[row+2]*v[2]
	}
	for i := 3; i < 6; i++ {
		row := i * 6
		out[i] = t[row]*v[0] + t[row+1]*v[1] + t[row+2]*v[2] +
			t[row+3]*v[3] + t[row+4]*v[4] + t[row+5]*v[5]
	}
	return out
}

// transformForce applies the dual transform X* = [E B; 0 E] read from the
// same stored X. For a rigid X this equals X^-T, which keeps f·m invariant.
func transformForce(v *[6]float64, t *TransformationMatrix) [6]float64 {
	var out [6]float64
	for i := 0; i < 3; i++ {
		top := i * 6
		bottom := (i + 3) * 6
		out[i] = t[top]*v[0] + t[top+1]*v[1] + t[top+2]*v[2] +
			t[bottom]*v[3] + t[bottom+1]*v[4] + t[bottom+2]*v[5]
		out[i+3] = t[bottom+3]*v[3] + t[bottom+4]*v[4] + t[bottom+5]*v[5]
	}
	return out
}

func approxEqual6(a, b *[6]float64, threshold float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > threshold {
			return false
		}
	}
	return true
}
