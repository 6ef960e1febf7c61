package ops

import "golang.org/x/exp/constraints"

// reluForward returns a for a >= 0 and 0 otherwise.
func reluForward[T constraints.Float](a T) T {
	if a >= 0 {
		return a
	}
	return 0
}

// reluBackward passes the gradient through only where the node's own output
// is strictly positive. The test is on the output value, not on g; at the
// boundary (output == 0) nothing propagates.
func reluBackward[T constraints.Float](g, out T) T {
	if out > 0 {
		return g
	}
	return 0
}
