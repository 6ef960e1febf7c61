package ops

import "golang.org/x/exp/constraints"

// addForward computes a + b.
func addForward[T constraints.Float](a, b T) T {
	return a + b
}

// addBackward: d(a+b)/da = 1, d(a+b)/db = 1.
// The upstream gradient flows unchanged to both operands.
func addBackward[T constraints.Float](g T) (ga, gb T) {
	return g, g
}
