package mutate

import (
	"math/rand"
	"testing"

	"zugzwang/internal/model"
)

func TestRandomMemoryMutationOnlyTouchesStaticCells(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	static := make([]model.MemoryCell, model.StaticMemoryCells)
	for i := range static {
		static[i].Value = 0
	}

	op := RandomMemoryMutation{Rand: rng}
	next, edits, err := op.Apply(static)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != model.StaticMemoryCells {
		t.Fatalf("expected %d cells back, got %d", model.StaticMemoryCells, len(next))
	}
	if len(edits) < MinEdits || len(edits) > MaxEdits {
		t.Fatalf("expected between %d and %d edits, got %d", MinEdits, MaxEdits, len(edits))
	}

	touched := make(map[int]bool)
	for _, e := range edits {
		if touched[e.Index] {
			t.Fatalf("index %d edited more than once", e.Index)
		}
		touched[e.Index] = true
		if e.OldValue == e.NewValue {
			t.Fatalf("edit at %d recorded no actual value change", e.Index)
		}
		if next[e.Index].Value != e.NewValue {
			t.Fatalf("cell %d value %d does not match recorded edit %d", e.Index, next[e.Index].Value, e.NewValue)
		}
		if e.NewValue < model.MemoryMin || e.NewValue > model.MemoryMax {
			t.Fatalf("new value %d out of range", e.NewValue)
		}
	}
}

func TestRandomMemoryMutationDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	static := make([]model.MemoryCell, model.StaticMemoryCells)
	for i := range static {
		static[i].Value = 1
	}

	op := RandomMemoryMutation{Rand: rng}
	if _, _, err := op.Apply(static); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, cell := range static {
		if cell.Value != 1 {
			t.Fatalf("input slice mutated at index %d: %d", i, cell.Value)
		}
	}
}
