package mutate

import (
	"math/rand"

	"zugzwang/internal/model"
)

// RandomMemoryMutation perturbs between MinEdits and MaxEdits distinct
// static cells to a new value drawn uniformly from [MemoryMin, MemoryMax].
// Dynamic cells are never touched; this is the only operator that mutates
// memory directly (all other dynamic-cell changes come from write nodes
// executed during play).
type RandomMemoryMutation struct {
	Rand *rand.Rand
}

func (RandomMemoryMutation) Name() string { return "random_memory_mutation" }

func (m RandomMemoryMutation) Apply(memory []model.MemoryCell) ([]model.MemoryCell, []MemoryEdit, error) {
	target := MinEdits + m.Rand.Intn(MaxEdits-MinEdits+1)

	next := make([]model.MemoryCell, len(memory))
	copy(next, memory)

	touched := make(map[int]bool)
	edits := make([]MemoryEdit, 0, target)

	for attempts := 0; len(edits) < target && attempts < MaxAttempts; attempts++ {
		idx := m.Rand.Intn(model.StaticMemoryCells)
		if touched[idx] {
			continue
		}
		value := m.Rand.Intn(model.MemoryMax-model.MemoryMin+1) + model.MemoryMin
		if value == next[idx].Value {
			continue
		}
		touched[idx] = true
		edits = append(edits, MemoryEdit{Index: idx, OldValue: next[idx].Value, NewValue: value})
		next[idx].Value = value
	}

	return next, edits, nil
}
