// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation of scalar
// computations.
//
// Every operation on a Var is recorded on a Tape. Calling Reverse on the
// final result walks the tape backwards once and leaves the partial
// derivative of that result in every variable's Grad.
//
// Example:
//
//	import "github.com/born-ml/tapegrad/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape[float64]()
//	    ws := tape.Vars(0.4, 0.8, 0.1)
//	    xs := tape.Vars(2.0, 4.0, 6.0)
//
//	    z := autodiff.Dot(ws, xs).Tanh()
//	    z.Reverse()
//
//	    fmt.Println(ws[1].Grad()) // 4 * (1 - tanh²(4.6))
//	    fmt.Print(tape)           // one line per recorded node
//	}
//
// Gradients accumulate across Reverse calls on the same tape; use
// Tape.ZeroGrad to reset them.
package autodiff

import (
	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"golang.org/x/exp/constraints"
)

// Tape records every operation performed on its variables.
type Tape[T constraints.Float] = autodiff.Tape[T]

// Var is a handle to a value recorded on a Tape.
type Var[T constraints.Float] = autodiff.Var[T]

// Node is one recorded value with its gradient and operator tag.
type Node[T constraints.Float] = autodiff.Node[T]

// Op is the operator tag stored on each node.
type Op = ops.Op

// Kind identifies an operator.
type Kind = ops.Kind

// Operator kinds.
const (
	OpLeaf = ops.Leaf
	OpAdd  = ops.Add
	OpSub  = ops.Sub
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpTanh = ops.Tanh
	OpReLU = ops.ReLU
)

// NewTape creates an empty tape.
//
// Example:
//
//	tape := autodiff.NewTape[float32]()
//	x := tape.Var(5)
func NewTape[T constraints.Float]() *Tape[T] {
	return autodiff.NewTape[T]()
}

// Powf records x^n.
func Powf[T constraints.Float](x, n Var[T]) Var[T] {
	return autodiff.Powf(x, n)
}

// Tanh records tanh(x).
func Tanh[T constraints.Float](x Var[T]) Var[T] {
	return autodiff.Tanh(x)
}

// ReLU records relu(x).
func ReLU[T constraints.Float](x Var[T]) Var[T] {
	return autodiff.ReLU(x)
}

// Sum records vars[0] + vars[1] + ...
func Sum[T constraints.Float](vars ...Var[T]) Var[T] {
	return autodiff.Sum(vars...)
}

// Dot records Σ a[i]*b[i].
func Dot[T constraints.Float](a, b []Var[T]) Var[T] {
	return autodiff.Dot(a, b)
}
