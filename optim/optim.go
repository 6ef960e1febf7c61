// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/tapegrad/autodiff"
	"github.com/born-ml/tapegrad/internal/optim"
	"golang.org/x/exp/constraints"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer[T constraints.Float] = optim.Optimizer[T]

// SGD (Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[T constraints.Float] = optim.SGD[T]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig[T constraints.Float] = optim.SGDConfig[T]

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig[float64]{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD[T constraints.Float](config SGDConfig[T]) *SGD[T] {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[T constraints.Float] = optim.Adam[T]

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig[T constraints.Float] = optim.AdamConfig[T]

// NewAdam creates a new Adam optimizer.
func NewAdam[T constraints.Float](config AdamConfig[T]) *Adam[T] {
	return optim.NewAdam(config)
}

// Grads reads the gradient of each variable, in order.
func Grads[T constraints.Float](vars []autodiff.Var[T]) []T {
	return optim.Grads(vars)
}
