package autodiff

import (
	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"k8s.io/klog/v2"
)

// Grad returns the gradient accumulated on the variable's node.
// Before any Reverse it is zero.
func (v Var[T]) Grad() T {
	v.mustBeBound()
	return v.tape.Node(v.idx).Grad
}

// Reverse runs the backward pass seeded at v.
//
// Algorithm:
//  1. Set v's gradient to 1 (dv/dv)
//  2. Walk every node of the tape from the last one to the first
//  3. For each node, apply its operator's local rule and add the
//     contributions into its operands' gradients
//
// Creation order is a topological order, so by the time a node is visited
// all the nodes using it have already pushed their gradient into it.
//
// Gradients are accumulated, never reset: calling Reverse again (from v or
// from any other root) adds to what is already there. Use Tape.ZeroGrad to
// start over.
func (v Var[T]) Reverse() {
	v.mustBeBound()
	v.tape.reverse(v.idx)
}

// Seed sets the gradient of the node at idx. Reverse seeds its root to 1;
// Seed is for callers that want a different upstream gradient and then call
// Backward.
func (t *Tape[T]) Seed(idx int, grad T) {
	defer t.borrowMut("Seed")()
	t.checkIndex(idx)
	t.nodes[idx].Grad = grad
}

// Backward walks the whole tape once without seeding any node.
func (t *Tape[T]) Backward() {
	defer t.borrowMut("Backward")()
	t.backward()
}

func (t *Tape[T]) reverse(root int) {
	defer t.borrowMut("Reverse")()
	t.checkIndex(root)

	klog.V(2).Infof("tape: reverse pass from node %d over %d nodes", root, len(t.nodes))
	t.nodes[root].Grad = 1
	t.backward()
}

// backward requires the borrow to be held by the caller.
func (t *Tape[T]) backward() {
	nodes := t.nodes
	for i := len(nodes) - 1; i >= 0; i-- {
		node := &nodes[i]
		// A node with no gradient contributes nothing. Skipping it also keeps
		// 0*Inf (e.g. ln(0) in Pow) from leaking NaN out of nodes the
		// root does not depend on.
		if node.Grad == 0 {
			continue
		}

		switch node.Op.Arity() {
		case 1:
			a := node.Op.A
			ga, _ := ops.Backward(node.Op.Kind, node.Grad, node.Data, nodes[a].Data, 0)
			nodes[a].Grad += ga
		case 2:
			a, b := node.Op.A, node.Op.B
			ga, gb := ops.Backward(node.Op.Kind, node.Grad, node.Data, nodes[a].Data, nodes[b].Data)
			nodes[a].Grad += ga
			nodes[b].Grad += gb
		}
	}
}
