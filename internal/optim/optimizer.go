// Package optim implements gradient-descent optimizers for scalar parameters
// differentiated on a tape.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// A tape never changes recorded values, so parameters live outside it as a
// plain slice. Each training step records a fresh tape from the current
// parameter values, runs the reverse pass and hands the gradients to Step.
//
// Example usage:
//
//	params := []float64{0.1, -0.3}
//	optimizer := optim.NewAdam[float64](optim.AdamConfig{LR: 0.01})
//
//	for step := range steps {
//	    tape := autodiff.NewTape[float64]()
//	    vars := tape.Vars(params...)
//	    loss := lossFunc(vars)
//	    loss.Reverse()
//
//	    optimizer.Step(params, optim.Grads(vars))
//	}
package optim

import (
	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer[T constraints.Float] interface {
	// Step updates params in place from grads, where grads[i] is the
	// gradient of the loss with respect to params[i].
	//
	// The number of parameters must stay the same from one step to the next.
	Step(params, grads []T) error

	// GetLR returns the current learning rate.
	GetLR() T
}

// Grads reads the gradient accumulated on each variable, in order.
func Grads[T constraints.Float](vars []autodiff.Var[T]) []T {
	grads := make([]T, len(vars))
	for i, v := range vars {
		grads[i] = v.Grad()
	}
	return grads
}

// checkShapes validates a Step call against the optimizer state size.
// state is nil before the first step.
func checkShapes[T constraints.Float](params, grads, state []T) error {
	if len(params) != len(grads) {
		return errors.Errorf("optim: %d parameters but %d gradients", len(params), len(grads))
	}
	if state != nil && len(state) != len(params) {
		return errors.Errorf("optim: optimizer holds state for %d parameters, got %d", len(state), len(params))
	}
	return nil
}
