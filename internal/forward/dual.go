// Package forward implements forward-mode automatic differentiation with
// dual numbers.
//
// A Dual carries a value and its derivative with respect to one chosen
// input. Every operation applies its local derivative rule eagerly, so there
// is no tape and no backward pass: the derivative is ready as soon as the
// result is.
//
//	x := forward.Variable(3.0)
//	y := x.Mul(x).Add(forward.Const(1.0)) // y = x² + 1
//	y.Deriv()                             // 6
package forward

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Dual is a value X together with its derivative DX.
type Dual[T constraints.Float] struct {
	X  T
	DX T
}

// New returns a dual number with the given value and derivative.
func New[T constraints.Float](x, dx T) Dual[T] {
	return Dual[T]{X: x, DX: dx}
}

// Const returns a constant: its derivative is zero.
func Const[T constraints.Float](x T) Dual[T] {
	return Dual[T]{X: x}
}

// Variable returns the input being differentiated against: its derivative
// is one.
func Variable[T constraints.Float](x T) Dual[T] {
	return Dual[T]{X: x, DX: 1}
}

// Value returns the primal value.
func (d Dual[T]) Value() T {
	return d.X
}

// Deriv returns the derivative carried by d.
func (d Dual[T]) Deriv() T {
	return d.DX
}

// Add returns d + o.
func (d Dual[T]) Add(o Dual[T]) Dual[T] {
	return Dual[T]{X: d.X + o.X, DX: d.DX + o.DX}
}

// Sub returns d - o.
func (d Dual[T]) Sub(o Dual[T]) Dual[T] {
	return Dual[T]{X: d.X - o.X, DX: d.DX - o.DX}
}

// Mul returns d * o, using the product rule.
func (d Dual[T]) Mul(o Dual[T]) Dual[T] {
	return Dual[T]{X: d.X * o.X, DX: d.DX*o.X + o.DX*d.X}
}

// Div returns d / o, using the quotient rule. Division by a zero value
// yields ±Inf or NaN following IEEE rules.
func (d Dual[T]) Div(o Dual[T]) Dual[T] {
	return Dual[T]{
		X:  d.X / o.X,
		DX: (d.DX*o.X - o.DX*d.X) / (o.X * o.X),
	}
}

// Neg returns -d.
func (d Dual[T]) Neg() Dual[T] {
	return Dual[T]{X: -d.X, DX: -d.DX}
}

// Pow returns d raised to the power p, where both may vary.
//
//	(a^b)' = b*a^(b-1)*a' + ln(a)*a^b*b'
//
// As in the reverse-mode rule, ln(a) is NaN for a negative base.
func (d Dual[T]) Pow(p Dual[T]) Dual[T] {
	a, b := float64(d.X), float64(p.X)
	value := math.Pow(a, b)
	deriv := b*math.Pow(a, b-1)*float64(d.DX) + math.Log(a)*value*float64(p.DX)
	return Dual[T]{X: T(value), DX: T(deriv)}
}

// PowReal returns d raised to a constant power p. Unlike Pow with a Const
// exponent it has no ln(d) term, so negative bases keep a finite derivative.
func (d Dual[T]) PowReal(p T) Dual[T] {
	a, b := float64(d.X), float64(p)
	return Dual[T]{
		X:  T(math.Pow(a, b)),
		DX: T(b*math.Pow(a, b-1)) * d.DX,
	}
}

// Tanh returns tanh(d).
func (d Dual[T]) Tanh() Dual[T] {
	th := T(math.Tanh(float64(d.X)))
	return Dual[T]{X: th, DX: (1 - th*th) * d.DX}
}

// ReLU returns max(0, d). The derivative is passed through only where the
// result is strictly positive.
func (d Dual[T]) ReLU() Dual[T] {
	if d.X > 0 {
		return d
	}
	return Dual[T]{}
}

// Pow returns x^n.
func Pow[T constraints.Float](x, n Dual[T]) Dual[T] { return x.Pow(n) }

// Tanh returns tanh(x).
func Tanh[T constraints.Float](x Dual[T]) Dual[T] { return x.Tanh() }

// ReLU returns relu(x).
func ReLU[T constraints.Float](x Dual[T]) Dual[T] { return x.ReLU() }

// Derivative evaluates f at x and returns f(x) and f'(x).
func Derivative[T constraints.Float](f func(Dual[T]) Dual[T], x T) (value, deriv T) {
	y := f(Variable(x))
	return y.X, y.DX
}
