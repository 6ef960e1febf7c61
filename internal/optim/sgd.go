package optim

import "golang.org/x/exp/constraints"

// SGD implements Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD[T constraints.Float] struct {
	lr         T
	momentum   T
	velocities []T
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig[T constraints.Float] struct {
	LR       T // Learning rate (default: 0.01)
	Momentum T // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig[float64]{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD[T constraints.Float](config SGDConfig[T]) *SGD[T] {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[T]{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD[T]) Step(params, grads []T) error {
	if err := checkShapes(params, grads, s.velocities); err != nil {
		return err
	}

	if s.momentum == 0 {
		for i, g := range grads {
			params[i] -= s.lr * g
		}
		return nil
	}

	if s.velocities == nil {
		s.velocities = make([]T, len(params))
	}
	for i, g := range grads {
		s.velocities[i] = s.momentum*s.velocities[i] + g
		params[i] -= s.lr * s.velocities[i]
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD[T]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}
