package evo

import (
	"errors"
	"math/rand"
	"sort"

	"zugzwang/internal/agent"
	"zugzwang/internal/model"
	"zugzwang/internal/mutate"
)

var ErrEmptyPopulation = errors.New("population is empty")

// rankedAgent pairs an agent with its arrival index (insertion order in the
// population slice, lower means older), used to break fitness ties in
// favor of the most recently arrived agent.
type rankedAgent struct {
	a       *model.Agent
	score   float64
	arrival int
}

func rank(population []*model.Agent, scores map[string]float64) []rankedAgent {
	ranked := make([]rankedAgent, len(population))
	for i, a := range population {
		ranked[i] = rankedAgent{a: a, score: scores[a.ID], arrival: i}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].arrival > ranked[j].arrival
	})
	return ranked
}

// Evolve selects the single top survivor from population (by score, ties
// broken by most recent arrival), and fills the rest of the next
// generation with mutate.Offspring of it (whose first child is an
// unmutated copy). The survivor itself carries forward with dynamic
// memory cleared; it is never mutated.
func Evolve(population []*model.Agent, scores map[string]float64, rng *rand.Rand, generation int) ([]*model.Agent, error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	ranked := rank(population, scores)
	top := ranked[0].a

	survivor := agent.Clone(top, generation)
	survivor.ResetDynamicMemory()

	children, err := mutate.Offspring(top, len(population)-1, rng, generation)
	if err != nil {
		return nil, err
	}

	next := make([]*model.Agent, 0, len(population))
	next = append(next, survivor)
	next = append(next, children...)
	return next, nil
}

// Migrate replaces the tail m agents of population with clones of imports
// (dynamic memory zeroed on arrival), leaving the rest of the population
// untouched. If there are fewer imports than requested, only that many
// slots are replaced.
func Migrate(population []*model.Agent, imports []*model.Agent, generation int) []*model.Agent {
	m := len(imports)
	if m > len(population) {
		m = len(population)
	}
	next := make([]*model.Agent, 0, len(population))
	next = append(next, population[:len(population)-m]...)
	for _, im := range imports[:m] {
		arrival := agent.Clone(im, generation)
		arrival.ResetDynamicMemory()
		next = append(next, arrival)
	}
	return next
}
