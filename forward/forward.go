// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package forward provides forward-mode automatic differentiation with dual
// numbers. It shares no state with package autodiff: each Dual carries its
// own derivative.
//
// Example:
//
//	value, deriv := forward.Derivative(func(x forward.Dual[float64]) forward.Dual[float64] {
//	    return x.Mul(x).Tanh()
//	}, 0.5)
package forward

import (
	"github.com/born-ml/tapegrad/internal/forward"
	"golang.org/x/exp/constraints"
)

// Dual is a value together with its derivative.
type Dual[T constraints.Float] = forward.Dual[T]

// Const returns a dual number with zero derivative.
func Const[T constraints.Float](x T) Dual[T] {
	return forward.Const(x)
}

// Variable returns a dual number with unit derivative.
func Variable[T constraints.Float](x T) Dual[T] {
	return forward.Variable(x)
}

// Derivative evaluates f at x and returns f(x) and f'(x).
func Derivative[T constraints.Float](f func(Dual[T]) Dual[T], x T) (value, deriv T) {
	return forward.Derivative(f, x)
}
