package mutate

import (
	"errors"
	"math/rand"

	"zugzwang/internal/model"
	"zugzwang/internal/token"
)

const (
	MinEdits    = 1
	MaxEdits    = 4
	MaxAttempts = 1000
)

var ErrNoMutation = errors.New("mutator exhausted attempts without producing a structural change")

// RandomTreeMutation replaces between MinEdits and MaxEdits subtrees of alg
// with freshly synthesized ones. Each accepted edit is the result of an
// unordered walk in which every non-root candidate is replaced with
// increasing probability as the walk proceeds, stopping at the first
// replacement; the candidate is accepted only if it actually changes the
// tree's canonical form, and rejected (retried) otherwise. The whole batch
// of edits shares a single budget of MaxAttempts tries.
type RandomTreeMutation struct {
	Rand *rand.Rand
}

func (RandomTreeMutation) Name() string { return "random_tree_mutation" }

func (m RandomTreeMutation) Apply(alg model.Algorithm) (model.Algorithm, []Edit, error) {
	target := MinEdits + m.Rand.Intn(MaxEdits-MinEdits+1)

	current := alg
	edits := make([]Edit, 0, target)

	for attempts := 0; len(edits) < target && attempts < MaxAttempts; attempts++ {
		candidate := token.CloneAlgorithm(current)
		total := token.CountNodes(candidate.Root) - 1 // root can never be replaced
		if total <= 0 {
			continue
		}

		visited := 0
		var edit *Edit
		token.WalkUnordered(m.Rand, candidate.Root, func(parent, node *model.Node, path []int) (*model.Node, bool) {
			if parent == nil {
				return nil, false
			}
			visited++
			probability := float64(visited) / float64(total)
			if m.Rand.Float64() > probability {
				return nil, false
			}
			replacement := token.Generate(m.Rand, parentKindOf(parent), candidate.Kind, 0)
			edit = &Edit{
				Path: append([]int{}, path...),
				From: token.Canonical(node),
				To:   token.Canonical(replacement),
			}
			return replacement, true
		})

		if edit == nil {
			continue
		}
		if token.Canonical(candidate.Root) == token.Canonical(current.Root) {
			continue
		}
		current = candidate
		edits = append(edits, *edit)
	}

	if len(edits) == 0 {
		return alg, nil, ErrNoMutation
	}
	return current, edits, nil
}

func parentKindOf(parent *model.Node) token.ParentKind {
	if parent.Kind == model.NodeVariable {
		return token.ParentVariable
	}
	return token.ParentFunction
}
