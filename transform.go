package onager

import "math"

// TransformationMatrix is a 6x6 Plücker transform stored row-major, in motion
// form:
//
//	X = [ E  0 ]
//	    [ B  E ]   with B = -E·p×
//
// for a frame rotated by E whose origin is at p. The same stored matrix acts
// on force vectors through its dual [E B; 0 E]. Constructors keep this block
// structure; a raw array that breaks it gives meaningless results silently.
type TransformationMatrix [36]float64

// IdentTransform returns the transform between coincident frames
func IdentTransform() TransformationMatrix {
	return IdentRotation().AsTransform()
}

// At returns the element at row, col.
func (t TransformationMatrix) At(row, col int) float64 {
	return t[row*6+col]
}

// Mul returns t·other. Applying the product to a vector is the same as
// applying other first, then t.
func (t TransformationMatrix) Mul(other TransformationMatrix) TransformationMatrix {
	var out TransformationMatrix
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var sum float64
			for k := 0; k < 6; k++ {
				sum += t[i*6+k] * other[k*6+j]
			}
			out[i*6+j] = sum
		}
	}
	return out
}

// ToRotation extracts E from the top-left block.
func (t TransformationMatrix) ToRotation() RotationMatrix {
	return RotationMatrix{
		t[0], t[1], t[2],
		t[6], t[7], t[8],
		t[12], t[13], t[14],
	}
}

// ToTranslation recovers p from the bottom-left block. Since Eᵀ·B = -p×,
// p is read off the skew matrix Eᵀ·B at (1,2), (2,0) and (0,1). For E = I
// these are the flat offsets 26, 30 and 19.
func (t TransformationMatrix) ToTranslation() TranslationVector {
	var p TranslationVector
	for k := 0; k < 3; k++ {
		e := k * 6
		b := (k + 3) * 6
		p[0] += t[e+1] * t[b+2]
		p[1] += t[e+2] * t[b]
		p[2] += t[e] * t[b+1]
	}
	return p
}

// Inverse returns the transform for the reverse frame change:
// (rot(E)·xlt(p))⁻¹ = xlt(-p)·rot(Eᵀ). It is not a general matrix inverse.
func (t TransformationMatrix) Inverse() TransformationMatrix {
	return t.ToTranslation().Inverse().Compose(t.ToRotation().Transpose())
}

func (t TransformationMatrix) ApproxEqualThreshold(other TransformationMatrix, threshold float64) bool {
	for i := range t {
		if math.Abs(t[i]-other[i]) > threshold {
			return false
		}
	}
	return true
}
