// Package autodiff implements reverse-mode automatic differentiation of
// scalar computations over a Tape.
//
// Architecture:
//   - Tape: append-only node list, the single source of truth for the graph
//   - Node: forward value, accumulated gradient and operator tag
//   - ops.Op: closed set of operators carrying operand indices
//   - Var: the handle user code computes with; every operation records a
//     new node and returns a new Var
//   - Reverse: walks the tape from the last node to the first, applying each
//     operator's local derivative rule
//
// Usage:
//
//	tape := autodiff.NewTape[float64]()
//	x, y := tape.Var(5), tape.Var(2)
//	z := autodiff.Powf(x, y) // z = x^y
//	z.Reverse()
//	fmt.Println(x.Grad(), y.Grad()) // 10, ln(5)*25
package autodiff

import (
	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Var is a handle to one node of a Tape plus a cached copy of its value.
//
// Vars are small values and are meant to be passed by value. Operations never
// modify their operands: each one records a new node and returns its handle.
// The zero Var is not bound to any tape and panics on use.
type Var[T constraints.Float] struct {
	tape  *Tape[T]
	value T
	idx   int
}

// Value returns the forward value of the variable.
func (v Var[T]) Value() T {
	return v.value
}

// Index returns the position of the variable's node on its tape.
func (v Var[T]) Index() int {
	return v.idx
}

// Tape returns the tape the variable is recorded on.
func (v Var[T]) Tape() *Tape[T] {
	return v.tape
}

// Add records v + other.
func (v Var[T]) Add(other Var[T]) Var[T] {
	return v.binary(ops.Add, other)
}

// Sub records v - other.
func (v Var[T]) Sub(other Var[T]) Var[T] {
	return v.binary(ops.Sub, other)
}

// Mul records v * other.
func (v Var[T]) Mul(other Var[T]) Var[T] {
	return v.binary(ops.Mul, other)
}

// Pow records v raised to the power exponent.
//
// The gradient with respect to exponent involves ln(v), which is NaN for
// negative v. That is not an error: the NaN simply shows up in the gradient.
func (v Var[T]) Pow(exponent Var[T]) Var[T] {
	return v.binary(ops.Pow, exponent)
}

// Tanh records tanh(v).
func (v Var[T]) Tanh() Var[T] {
	return v.unary(ops.Tanh)
}

// ReLU records max(0, v).
func (v Var[T]) ReLU() Var[T] {
	return v.unary(ops.ReLU)
}

// Add records a + b.
func Add[T constraints.Float](a, b Var[T]) Var[T] { return a.Add(b) }

// Sub records a - b.
func Sub[T constraints.Float](a, b Var[T]) Var[T] { return a.Sub(b) }

// Mul records a * b.
func Mul[T constraints.Float](a, b Var[T]) Var[T] { return a.Mul(b) }

// Powf records x^n.
func Powf[T constraints.Float](x, n Var[T]) Var[T] { return x.Pow(n) }

// Tanh records tanh(x).
func Tanh[T constraints.Float](x Var[T]) Var[T] { return x.Tanh() }

// ReLU records relu(x).
func ReLU[T constraints.Float](x Var[T]) Var[T] { return x.ReLU() }

// Sum records the left fold vars[0] + vars[1] + ... as a chain of Add nodes.
// It panics if vars is empty, since there is no tape to record a zero on.
func Sum[T constraints.Float](vars ...Var[T]) Var[T] {
	if len(vars) == 0 {
		exceptions.Panicf("autodiff.Sum: no variables given")
	}
	acc := vars[0]
	for _, v := range vars[1:] {
		acc = acc.Add(v)
	}
	return acc
}

// Dot records Σ a[i]*b[i]. Both slices must have the same, non-zero length.
func Dot[T constraints.Float](a, b []Var[T]) Var[T] {
	if len(a) != len(b) || len(a) == 0 {
		exceptions.Panicf("autodiff.Dot: lengths must match and be non-zero, got %d and %d", len(a), len(b))
	}
	products := make([]Var[T], len(a))
	for i := range a {
		products[i] = a[i].Mul(b[i])
	}
	return Sum(products...)
}

func (v Var[T]) binary(kind ops.Kind, other Var[T]) Var[T] {
	v.mustBeBound()
	other.mustBeBound()
	if v.tape != other.tape {
		exceptions.Panicf("autodiff: %s of variables recorded on different tapes (nodes %d and %d)", kind, v.idx, other.idx)
	}

	// Forward pass, then record the operation.
	result := ops.Forward(kind, v.value, other.value)
	return Var[T]{
		tape:  v.tape,
		value: result,
		idx:   v.tape.Record(result, ops.Op{Kind: kind, A: v.idx, B: other.idx}),
	}
}

func (v Var[T]) unary(kind ops.Kind) Var[T] {
	v.mustBeBound()
	result := ops.Forward(kind, v.value, 0)
	return Var[T]{
		tape:  v.tape,
		value: result,
		idx:   v.tape.Record(result, ops.Op{Kind: kind, A: v.idx, B: -1}),
	}
}

func (v Var[T]) mustBeBound() {
	if v.tape == nil {
		exceptions.Panicf("autodiff: Var is not bound to a tape (zero value?)")
	}
}
