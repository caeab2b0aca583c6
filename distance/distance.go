// Package distance provides float32 vector distance calculations.
//
// Every function assumes the two vectors have the same length; the
// index validates dimensions at its boundary so the hot path does not.
// All results are sums and products of finite inputs: given NaN-free
// vectors they are finite or +Inf and never NaN, which is the contract
// the candidate collectors rely on.
package distance

import "github.com/chewxy/math32"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. The squared form avoids the square root in the hot path;
// comparisons remain valid because squaring is monotonic for
// non-negative distances.
func SquaredL2(a, b []float32) float32 {
	var dist float32
	for i := range a {
		d := a[i] - b[i]
		dist += d * d
	}

	return dist
}

// Dot calculates the dot product of two vectors.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Magnitude calculates the L2 norm of a vector.
func Magnitude(v []float32) float32 {
	return math32.Sqrt(Dot(v, v))
}

// HasNaN reports whether the vector contains a NaN component. Used for
// boundary validation: NaN components would poison every squared
// distance computed from the vector.
func HasNaN(v []float32) bool {
	for _, x := range v {
		if math32.IsNaN(x) {
			return true
		}
	}

	return false
}
