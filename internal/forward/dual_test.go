package forward_test

import (
	"math"
	"testing"

	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/born-ml/tapegrad/internal/forward"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/dual"
)

func TestDual_ConstAndVariable(t *testing.T) {
	c := forward.Const(3.0)
	v := forward.Variable(3.0)
	assert.Equal(t, 3.0, c.Value())
	assert.Zero(t, c.Deriv())
	assert.Equal(t, 1.0, v.Deriv())
}

func TestDual_Arithmetic(t *testing.T) {
	x := forward.Variable(5.0)
	y := forward.Const(2.0)

	assert.Equal(t, forward.New(7.0, 1.0), x.Add(y))
	assert.Equal(t, forward.New(3.0, 1.0), x.Sub(y))
	assert.Equal(t, forward.New(-3.0, -1.0), y.Sub(x))
	assert.Equal(t, forward.New(10.0, 2.0), x.Mul(y))
	assert.Equal(t, forward.New(-5.0, -1.0), x.Neg())

	q := y.Div(x) // 2/x, d/dx = -2/x²
	assert.InDelta(t, 0.4, q.X, 1e-12)
	assert.InDelta(t, -2.0/25, q.DX, 1e-12)
}

func TestDual_DivByZero(t *testing.T) {
	q := forward.Variable(1.0).Div(forward.Const(0.0))
	assert.True(t, math.IsInf(q.X, 1))
	assert.True(t, math.IsNaN(q.DX) || math.IsInf(q.DX, 0))
}

func TestDual_Pow(t *testing.T) {
	// d/dx x^2 at 5.
	v, d := forward.Derivative(func(x forward.Dual[float64]) forward.Dual[float64] {
		return forward.Pow(x, forward.Const(2.0))
	}, 5.0)
	assert.Equal(t, 25.0, v)
	assert.InDelta(t, 10.0, d, 1e-12)

	// d/dy 5^y at 2.
	_, d = forward.Derivative(func(y forward.Dual[float64]) forward.Dual[float64] {
		return forward.Const(5.0).Pow(y)
	}, 2.0)
	assert.InDelta(t, math.Log(5)*25, d, 1e-12)

	// Constant exponent on a negative base.
	p := forward.Variable(-2.0).PowReal(3)
	assert.Equal(t, -8.0, p.X)
	assert.Equal(t, 12.0, p.DX)
}

func TestDual_ReLU(t *testing.T) {
	assert.Equal(t, forward.New(3.0, 1.0), forward.ReLU(forward.Variable(3.0)))
	assert.Equal(t, forward.Dual[float64]{}, forward.ReLU(forward.Variable(0.0)))
	assert.Equal(t, forward.Dual[float64]{}, forward.ReLU(forward.Variable(-5.0)))
}

// TestDual_MatchesGonum compares against gonum's dual numbers on an
// expression using every shared operator.
func TestDual_MatchesGonum(t *testing.T) {
	for _, x0 := range []float64{0.3, 1.1, 2.5} {
		ours := func(x forward.Dual[float64]) forward.Dual[float64] {
			return forward.Tanh(x.Mul(x).Add(forward.Const(0.5))).Pow(x)
		}
		value, deriv := forward.Derivative(ours, x0)

		x := dual.Number{Real: x0, Emag: 1}
		ref := dual.Pow(dual.Tanh(dual.Add(dual.Mul(x, x), dual.Number{Real: 0.5})), x)

		assert.InDelta(t, ref.Real, value, 1e-12, "value at %v", x0)
		assert.InDelta(t, ref.Emag, deriv, 1e-9, "derivative at %v", x0)
	}
}

// TestDual_AgreesWithReverseMode checks both differentiators on the neuron
// scenario, one input at a time for forward mode.
func TestDual_AgreesWithReverseMode(t *testing.T) {
	ws := []float64{0.4, 0.8, 0.1}
	xs := []float64{2.0, 4.0, 6.0}

	tape := autodiff.NewTape[float64]()
	wVars := tape.Vars(ws...)
	autodiff.Dot(wVars, tape.Vars(xs...)).Tanh().Reverse()

	for k := range ws {
		acc := forward.Const(0.0)
		for i := range ws {
			w := forward.Const(ws[i])
			if i == k {
				w = forward.Variable(ws[i])
			}
			acc = acc.Add(w.Mul(forward.Const(xs[i])))
		}
		assert.InDelta(t, wVars[k].Grad(), acc.Tanh().Deriv(), 1e-12, "w[%d]", k)
	}
}
