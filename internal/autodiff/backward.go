package autodiff

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// Backward computes gradients of root with respect to every node in its
// graph that requires them, seeding root's gradient with ones.
func Backward(root *Node) error {
	return BackwardWithSeed(root, nil)
}

// BackwardWithSeed is Backward with an explicit seed gradient for root.
// A nil seed means ones. The seed is copied.
//
// Algorithm:
//  1. Seed the root gradient
//  2. Order the graph with a post-order depth-first search
//  3. Walk the order in reverse; for each interior node, ask its creator
//     for the parents' gradients and accumulate them
//
// Gradients of interior nodes are reset at the start of every pass, so a
// second pass over the same graph adds exactly one more contribution to
// each leaf. On error the gradients may be partially populated.
func BackwardWithSeed(root *Node, seed *tensor.Buffer) error {
	if root == nil {
		return errors.Wrap(tensor.ErrArity, "backward: nil root")
	}
	if !root.requiresGrad {
		return errors.Wrap(tensor.ErrNoGradient, "backward")
	}

	if seed == nil {
		seed = tensor.Ones(root.data.Shape())
	} else if !seed.Shape().Equal(root.data.Shape()) {
		return errors.Wrapf(tensor.ErrShape, "backward: seed shape %v does not match root shape %v",
			seed.Shape(), root.data.Shape())
	}

	order := TopologicalOrder(root)
	for _, node := range order {
		if node != root && node.creator != nil {
			node.grad = nil
		}
	}
	root.grad = seed.Clone()

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.creator == nil {
			continue
		}
		if err := backwardStep(node); err != nil {
			return err
		}
	}
	return nil
}

// backwardStep propagates node's gradient to its parents.
func backwardStep(node *Node) error {
	name := node.creator.Name()
	if node.grad == nil {
		return errors.Wrapf(tensor.ErrMissingGradient, "%s backward", name)
	}

	grads, err := node.creator.Backward(node)
	if err != nil {
		return err
	}
	if len(grads) != len(node.parents) {
		return errors.Wrapf(tensor.ErrShape, "%s backward returned %d gradients for %d parents",
			name, len(grads), len(node.parents))
	}

	for i, parent := range node.parents {
		g := grads[i]
		if g == nil || !g.Shape().Equal(parent.data.Shape()) {
			var got tensor.Shape
			if g != nil {
				got = g.Shape()
			}
			return errors.Wrapf(tensor.ErrShape, "%s backward: gradient %d has shape %v, parent has %v",
				name, i, got, parent.data.Shape())
		}
		// Tracking may have been turned off after the graph was built.
		if !parent.requiresGrad {
			continue
		}
		if err := accumulate(parent, g); err != nil {
			return err
		}
	}
	return nil
}

// accumulate assigns g to an empty gradient and adds it otherwise.
func accumulate(node *Node, g *tensor.Buffer) error {
	if node.grad == nil {
		node.grad = g.Clone()
		return nil
	}
	return node.grad.AddInPlace(g)
}

// TopologicalOrder returns every node reachable from root through parent
// links, each exactly once, with parents before children. root is last.
func TopologicalOrder(root *Node) []*Node {
	var order []*Node
	visited := make(map[*Node]bool)

	var visit func(n *Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, p := range n.parents {
			visit(p)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}
