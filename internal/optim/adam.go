package optim

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[T constraints.Float] struct {
	lr    T
	beta1 T
	beta2 T
	eps   T
	t     int // Timestep for bias correction
	m     []T // First moment estimates
	v     []T // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig[T constraints.Float] struct {
	LR    T    // Learning rate (default: 0.001)
	Betas [2]T // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   T    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam[T constraints.Float](config AdamConfig[T]) *Adam[T] {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam[T]{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step performs a single optimization step.
func (a *Adam[T]) Step(params, grads []T) error {
	if err := checkShapes(params, grads, a.m); err != nil {
		return err
	}
	if a.m == nil {
		a.m = make([]T, len(params))
		a.v = make([]T, len(params))
	}

	a.t++
	biasCorrection1 := 1 - T(math.Pow(float64(a.beta1), float64(a.t)))
	biasCorrection2 := 1 - T(math.Pow(float64(a.beta2), float64(a.t)))

	for i, g := range grads {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2
		params[i] -= a.lr * mHat / (T(math.Sqrt(float64(vHat))) + a.eps)
	}
	return nil
}

// GetLR returns the current learning rate.
func (a *Adam[T]) GetLR() T {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[T]) SetLR(lr T) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken so far.
func (a *Adam[T]) GetTimestep() int {
	return a.t
}
