package ops

import (
	"math"

	"golang.org/x/exp/constraints"
)

func tanhForward[T constraints.Float](a T) T {
	return T(math.Tanh(float64(a)))
}

// tanhBackward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), and since the node already holds tanh(x):
// grad_input = grad_output * (1 - output²).
func tanhBackward[T constraints.Float](g, out T) T {
	return g * (1 - out*out)
}
