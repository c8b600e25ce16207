package token

import "zugzwang/internal/model"

// CloneNode deep-copies a subtree. No slice or pointer in the result aliases
// the source tree.
func CloneNode(node *model.Node) *model.Node {
	if node == nil {
		return nil
	}
	clone := &model.Node{
		Kind:        node.Kind,
		Variable:    node.Variable,
		MemoryIndex: node.MemoryIndex,
	}
	if node.Args != nil {
		clone.Args = make([]*model.Node, len(node.Args))
		for i, child := range node.Args {
			clone.Args[i] = CloneNode(child)
		}
	}
	return clone
}

// CloneAlgorithm deep-copies an algorithm's tree; Kind is a value type and
// copies for free.
func CloneAlgorithm(alg model.Algorithm) model.Algorithm {
	return model.Algorithm{Kind: alg.Kind, Root: CloneNode(alg.Root)}
}
