package ops

import "golang.org/x/exp/constraints"

func mulForward[T constraints.Float](a, b T) T {
	return a * b
}

// mulBackward: d(a*b)/da = b, d(a*b)/db = a.
func mulBackward[T constraints.Float](g, a, b T) (ga, gb T) {
	return g * b, g * a
}
