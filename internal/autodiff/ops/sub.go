package ops

import "golang.org/x/exp/constraints"

func subForward[T constraints.Float](a, b T) T {
	return a - b
}

// subBackward: d(a-b)/da = 1, d(a-b)/db = -1.
func subBackward[T constraints.Float](g T) (ga, gb T) {
	return g, -g
}
