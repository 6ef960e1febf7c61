package autodiff

import (
	"sync/atomic"

	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Node is one recorded value: its forward data, the gradient accumulated on
// it during reverse passes and the operator that produced it.
//
// Data never changes after the node is recorded. Grad starts at zero and is
// only changed by Reverse, Seed and ZeroGrad.
type Node[T constraints.Float] struct {
	Data T
	Grad T
	Op   ops.Op
}

// Tape is the append-only list of nodes recorded during the forward pass.
//
// A node's index is its creation order. Operands always exist before the
// nodes that use them, so every parent index is smaller than the index of
// the node referencing it, and walking the tape from the last node to the
// first is a valid reverse topological order.
//
// Usage:
//
//	tape := NewTape[float64]()
//	x := tape.Var(5)
//	y := tape.Var(2)
//	z := x.Mul(y)
//	z.Reverse()
//	x.Grad() // 2
//
// A Tape is not safe for concurrent use. Every mutating call takes an
// exclusive borrow of the tape for the duration of that call only; a second
// mutation or a read while the borrow is held panics instead of corrupting
// the node list.
type Tape[T constraints.Float] struct {
	nodes    []Node[T]
	borrowed atomic.Bool
}

// NewTape creates an empty tape.
func NewTape[T constraints.Float]() *Tape[T] {
	return &Tape[T]{
		nodes: make([]Node[T], 0, 64), // Pre-allocate for common case
	}
}

// Var records an input variable (a leaf) holding value and returns its handle.
func (t *Tape[T]) Var(value T) Var[T] {
	return Var[T]{
		tape:  t,
		value: value,
		idx:   t.Record(value, ops.NewLeaf()),
	}
}

// Vars records one leaf per value, in order.
func (t *Tape[T]) Vars(values ...T) []Var[T] {
	vars := make([]Var[T], len(values))
	for i, value := range values {
		vars[i] = t.Var(value)
	}
	return vars
}

// Record appends a node with the given forward value and operator tag, and
// returns its index. The new node's gradient is zero.
//
// Every operand index in op must refer to an already recorded node; anything
// else is a broken invariant and panics.
func (t *Tape[T]) Record(value T, op ops.Op) int {
	defer t.borrowMut("Record")()

	if !op.Kind.Valid() {
		exceptions.Panicf("tape: cannot record unknown operator %s", op.Kind)
	}
	idx := len(t.nodes)
	for _, p := range op.Parents() {
		if p < 0 || p >= idx {
			exceptions.Panicf("tape: operator %s at index %d references node %d, only nodes [0, %d) exist", op, idx, p, idx)
		}
	}
	t.nodes = append(t.nodes, Node[T]{Data: value, Op: op})
	return idx
}

// Len returns the number of recorded nodes.
func (t *Tape[T]) Len() int {
	t.checkReadable("Len")
	return len(t.nodes)
}

// Node returns a copy of the node at idx.
func (t *Tape[T]) Node(idx int) Node[T] {
	t.checkReadable("Node")
	t.checkIndex(idx)
	return t.nodes[idx]
}

// Nodes returns a copy of every node, in creation order.
func (t *Tape[T]) Nodes() []Node[T] {
	t.checkReadable("Nodes")
	nodes := make([]Node[T], len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// ZeroGrad resets every gradient on the tape to zero.
//
// Reverse never clears gradients on its own: repeated passes on the same
// tape accumulate. Call ZeroGrad between passes to start fresh.
func (t *Tape[T]) ZeroGrad() {
	defer t.borrowMut("ZeroGrad")()
	for i := range t.nodes {
		t.nodes[i].Grad = 0
	}
}

// borrowMut takes the exclusive borrow and returns the function releasing it.
//
//	defer t.borrowMut("Record")()
func (t *Tape[T]) borrowMut(caller string) func() {
	if !t.borrowed.CompareAndSwap(false, true) {
		exceptions.Panicf("tape: %s called while the tape is already being mutated", caller)
	}
	return func() { t.borrowed.Store(false) }
}

func (t *Tape[T]) checkReadable(caller string) {
	if t.borrowed.Load() {
		exceptions.Panicf("tape: %s called while the tape is being mutated", caller)
	}
}

func (t *Tape[T]) checkIndex(idx int) {
	if idx < 0 || idx >= len(t.nodes) {
		exceptions.Panicf("tape: node index %d out of range [0, %d)", idx, len(t.nodes))
	}
}
