package ops

import (
	"math"

	"golang.org/x/exp/constraints"
)

// powForward computes a^b with math.Pow semantics.
func powForward[T constraints.Float](a, b T) T {
	return T(math.Pow(float64(a), float64(b)))
}

// powBackward computes the gradients of a^b.
//
//	d(a^b)/da = b * a^(b-1)
//	d(a^b)/db = ln(a) * a^b
//
// ln(a) is NaN for a < 0 and -Inf for a == 0. That is not guarded: the
// result follows ordinary floating-point contagion into the gradient of b.
func powBackward[T constraints.Float](g, a, b T) (ga, gb T) {
	fa, fb := float64(a), float64(b)
	ga = g * T(fb*math.Pow(fa, fb-1))
	gb = g * T(math.Log(fa)*math.Pow(fa, fb))
	return ga, gb
}
