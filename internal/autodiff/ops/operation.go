// Package ops defines the closed set of scalar operators a tape can record.
//
// Every node on a tape carries an Op: a Kind plus the tape indices of its
// operands. Each operator provides:
//   - Forward: the ordinary numeric value of the primitive
//   - Backward: the local derivative rule, scaled by the upstream gradient
//
// Supported operators:
//   - Leaf: input variable, no operands
//   - Add:  a + b       (d/da = 1, d/db = 1)
//   - Sub:  a - b       (d/da = 1, d/db = -1)
//   - Mul:  a * b       (d/da = b, d/db = a)
//   - Pow:  a ^ b       (d/da = b*a^(b-1), d/db = ln(a)*a^b)
//   - Tanh: tanh(a)     (d/da = 1 - tanh²(a))
//   - ReLU: max(0, a)   (d/da = 1 if output > 0, else 0)
//
// Adding an operator means adding a Kind, its entry in the registry below and
// its cases in Forward and Backward. There is no per-operator interface.
package ops

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Kind identifies a primitive operator.
type Kind uint8

// Operator kinds.
const (
	Leaf Kind = iota
	Add
	Sub
	Mul
	Pow
	Tanh
	ReLU

	numKinds
)

type kindInfo struct {
	name  string
	arity int
}

var registry = [numKinds]kindInfo{
	Leaf: {name: "leaf", arity: 0},
	Add:  {name: "add", arity: 2},
	Sub:  {name: "sub", arity: 2},
	Mul:  {name: "mul", arity: 2},
	Pow:  {name: "pow", arity: 2},
	Tanh: {name: "tanh", arity: 1},
	ReLU: {name: "relu", arity: 1},
}

// Valid reports whether k is a registered operator.
func (k Kind) Valid() bool {
	return k < numKinds
}

// String returns the operator name used in tape dumps.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return registry[k].name
}

// Arity returns the number of operands the operator takes (0, 1 or 2).
func (k Kind) Arity() int {
	mustBeValid(k)
	return registry[k].arity
}

// Kinds returns all registered operator kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Leaf; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Op is the tagged union stored on each node: which operator produced the
// node and the tape indices of its operands.
//
// Unary operators use only A. Leaf uses neither. Unused indices are -1.
type Op struct {
	Kind Kind
	A, B int
}

// NewLeaf returns the operator tag of an input variable.
func NewLeaf() Op { return Op{Kind: Leaf, A: -1, B: -1} }

// NewAdd returns the tag for a + b.
func NewAdd(a, b int) Op { return Op{Kind: Add, A: a, B: b} }

// NewSub returns the tag for a - b.
func NewSub(a, b int) Op { return Op{Kind: Sub, A: a, B: b} }

// NewMul returns the tag for a * b.
func NewMul(a, b int) Op { return Op{Kind: Mul, A: a, B: b} }

// NewPow returns the tag for a ^ b.
func NewPow(a, b int) Op { return Op{Kind: Pow, A: a, B: b} }

// NewTanh returns the tag for tanh(a).
func NewTanh(a int) Op { return Op{Kind: Tanh, A: a, B: -1} }

// NewReLU returns the tag for relu(a).
func NewReLU(a int) Op { return Op{Kind: ReLU, A: a, B: -1} }

// Arity is a shortcut for op.Kind.Arity().
func (op Op) Arity() int {
	return op.Kind.Arity()
}

// Parents returns the operand indices embedded in the tag, in operand order.
// A Leaf has no parents.
func (op Op) Parents() []int {
	switch op.Arity() {
	case 1:
		return []int{op.A}
	case 2:
		return []int{op.A, op.B}
	default:
		return nil
	}
}

// String formats the tag the way tape dumps show it, e.g. "mul -- (0, 1)".
func (op Op) String() string {
	switch op.Arity() {
	case 1:
		return fmt.Sprintf("%s -- (%d)", op.Kind, op.A)
	case 2:
		return fmt.Sprintf("%s -- (%d, %d)", op.Kind, op.A, op.B)
	default:
		return op.Kind.String()
	}
}

// Forward evaluates the primitive on operand values a and b.
// Unary operators ignore b. Leaf has no forward value and panics.
func Forward[T constraints.Float](k Kind, a, b T) T {
	switch k {
	case Add:
		return addForward(a, b)
	case Sub:
		return subForward(a, b)
	case Mul:
		return mulForward(a, b)
	case Pow:
		return powForward(a, b)
	case Tanh:
		return tanhForward(a)
	case ReLU:
		return reluForward(a)
	}
	exceptions.Panicf("ops.Forward: operator %s has no forward rule", k)
	return 0
}

// Backward applies the local derivative rule of k.
//
// g is the gradient accumulated on the node, out is the node's own forward
// value and a, b are the operand values. It returns the contributions to add
// into the operands' gradients. Unary operators return gb = 0 and Leaf returns
// zeros: leaves are terminal.
func Backward[T constraints.Float](k Kind, g, out, a, b T) (ga, gb T) {
	switch k {
	case Leaf:
		return 0, 0
	case Add:
		return addBackward(g)
	case Sub:
		return subBackward(g)
	case Mul:
		return mulBackward(g, a, b)
	case Pow:
		return powBackward(g, a, b)
	case Tanh:
		return tanhBackward(g, out), 0
	case ReLU:
		return reluBackward(g, out), 0
	}
	exceptions.Panicf("ops.Backward: unknown operator %s", k)
	return 0, 0
}

func mustBeValid(k Kind) {
	if !k.Valid() {
		exceptions.Panicf("ops: unknown operator %s", k)
	}
}
