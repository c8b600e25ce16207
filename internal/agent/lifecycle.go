package agent

import (
	"math/rand"

	"github.com/google/uuid"

	"zugzwang/internal/model"
	"zugzwang/internal/token"
)

// NewRandom synthesizes a fresh agent: random board and movement trees, and
// a static memory bank drawn uniformly from [MemoryMin, MemoryMax]. Dynamic
// memory starts zeroed. rng is always threaded explicitly.
func NewRandom(rng *rand.Rand, generation int) *model.Agent {
	a := &model.Agent{
		ID:         uuid.NewString(),
		Generation: generation,
		BoardAlg:   token.GenerateAlgorithm(rng, model.ProgramBoard),
		MoveAlg:    token.GenerateAlgorithm(rng, model.ProgramMovement),
		Memory:     model.NewMemoryBank(),
	}
	for i := range a.StaticMemory() {
		a.Memory[i].Value = rng.Intn(model.MemoryMax-model.MemoryMin+1) + model.MemoryMin
	}
	return a
}

// NewPopulation synthesizes n independent fresh agents for generation 0.
func NewPopulation(rng *rand.Rand, n int) []*model.Agent {
	pop := make([]*model.Agent, n)
	for i := range pop {
		pop[i] = NewRandom(rng, 0)
	}
	return pop
}

// Clone deep-copies an agent under a fresh identity, with dynamic memory
// untouched (callers that need a clean slate call ResetDynamicMemory after).
func Clone(a *model.Agent, generation int) *model.Agent {
	memory := make([]model.MemoryCell, len(a.Memory))
	copy(memory, a.Memory)
	return &model.Agent{
		ID:         uuid.NewString(),
		Generation: generation,
		BoardAlg:   token.CloneAlgorithm(a.BoardAlg),
		MoveAlg:    token.CloneAlgorithm(a.MoveAlg),
		Memory:     memory,
	}
}

// CloneForHypothetical deep-copies an agent's trees and memory without
// changing its identity, used by the Game Runner to evaluate a candidate
// move's consequences without letting its memory writes leak back into the
// real agent or across sibling candidates.
func CloneForHypothetical(a *model.Agent) *model.Agent {
	memory := make([]model.MemoryCell, len(a.Memory))
	copy(memory, a.Memory)
	return &model.Agent{
		ID:         a.ID,
		Generation: a.Generation,
		BoardAlg:   token.CloneAlgorithm(a.BoardAlg),
		MoveAlg:    token.CloneAlgorithm(a.MoveAlg),
		Memory:     memory,
	}
}
