package token

import (
	"math/rand"
	"testing"

	"zugzwang/internal/model"
)

func sampleTree() *model.Node {
	return &model.Node{
		Kind: model.NodeAdd,
		Args: []*model.Node{
			{Kind: model.NodeVariable, Variable: model.ProvidedVariableID(model.VarIsSelf)},
			{
				Kind: model.NodeSub,
				Args: []*model.Node{
					{Kind: model.NodeVariable, Variable: model.CustomVariableID(1)},
					{Kind: model.NodeVariable, Variable: model.CustomVariableID(2)},
				},
			},
		},
	}
}

func TestCountNodes(t *testing.T) {
	if got := CountNodes(sampleTree()); got != 5 {
		t.Fatalf("expected 5 nodes, got %d", got)
	}
	if got := CountNodes(nil); got != 0 {
		t.Fatalf("nil tree should count as 0, got %d", got)
	}
}

func TestWalkVisitsEveryNodeInPreOrder(t *testing.T) {
	tree := sampleTree()
	var visited []model.NodeKind
	Walk(tree, func(parent, node *model.Node, path []int) (*model.Node, bool) {
		visited = append(visited, node.Kind)
		return nil, false
	})
	want := []model.NodeKind{model.NodeAdd, model.NodeVariable, model.NodeSub, model.NodeVariable, model.NodeVariable}
	if len(visited) != len(want) {
		t.Fatalf("expected %d visits, got %d (%v)", len(want), len(visited), visited)
	}
	for i, k := range want {
		if visited[i] != k {
			t.Fatalf("visit %d: got %s want %s", i, visited[i], k)
		}
	}
}

func TestWalkReplacementSubstitutesInPlace(t *testing.T) {
	tree := sampleTree()
	replacement := &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(9)}
	newRoot := Walk(tree, func(parent, node *model.Node, path []int) (*model.Node, bool) {
		if node.Kind == model.NodeSub {
			return replacement, true
		}
		return nil, false
	})
	if newRoot.Args[1] != replacement {
		t.Fatalf("expected sub subtree replaced in place")
	}
}

func TestWalkReplacementAtRoot(t *testing.T) {
	tree := sampleTree()
	replacement := &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(0)}
	newRoot := Walk(tree, func(parent, node *model.Node, path []int) (*model.Node, bool) {
		if node.Kind == model.NodeAdd {
			return replacement, true
		}
		return nil, false
	})
	if newRoot != replacement {
		t.Fatalf("expected root itself replaced")
	}
}

func TestWalkUnorderedStillVisitsParentBeforeChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := sampleTree()
	visitedRoot := false
	WalkUnordered(rng, tree, func(parent, node *model.Node, path []int) (*model.Node, bool) {
		if node.Kind == model.NodeAdd {
			visitedRoot = true
		}
		if parent != nil && parent.Kind == model.NodeAdd && !visitedRoot {
			t.Fatalf("child visited before its parent")
		}
		return nil, false
	})
}
