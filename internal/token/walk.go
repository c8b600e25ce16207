package token

import (
	"math/rand"

	"zugzwang/internal/model"
)

// VisitFunc is called once per visited node in pre-order, parent before
// children. path is the sequence of child indices from the root to node
// (empty for the root itself). Returning a non-nil replacement substitutes
// node in place — including at the root, which is why Walk/WalkUnordered
// return the possibly-new root rather than mutating in place unconditionally.
// Returning stop=true ends the walk immediately after applying any
// replacement.
type VisitFunc func(parent, node *model.Node, path []int) (replacement *model.Node, stop bool)

// Walk visits every node of root in deterministic pre-order.
func Walk(root *model.Node, visit VisitFunc) *model.Node {
	newRoot, _ := walk(nil, root, nil, visit, nil)
	return newRoot
}

// WalkUnordered visits every node of root in pre-order, but at each level
// the order in which sibling subtrees are descended into is shuffled. The
// node itself is still visited before any of its children, shuffled or not.
func WalkUnordered(rng *rand.Rand, root *model.Node, visit VisitFunc) *model.Node {
	newRoot, _ := walk(nil, root, nil, visit, rng)
	return newRoot
}

func walk(parent, node *model.Node, path []int, visit VisitFunc, rng *rand.Rand) (*model.Node, bool) {
	if node == nil {
		return nil, false
	}
	if replacement, stop := visit(parent, node, path); replacement != nil || stop {
		if replacement != nil {
			node = replacement
		}
		return node, stop
	}

	order := make([]int, len(node.Args))
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	for _, i := range order {
		childPath := append(append([]int{}, path...), i)
		newChild, stop := walk(node, node.Args[i], childPath, visit, rng)
		if newChild != node.Args[i] {
			node.Args[i] = newChild
		}
		if stop {
			return node, true
		}
	}
	return node, false
}

// CountNodes returns the total number of nodes in the tree rooted at root,
// including root itself.
func CountNodes(root *model.Node) int {
	if root == nil {
		return 0
	}
	n := 1
	for _, child := range root.Args {
		n += CountNodes(child)
	}
	return n
}
