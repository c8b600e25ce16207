package mutate

import "zugzwang/internal/model"

// Edit records one accepted structural change: the path to the replaced
// node (child indices from the root) and the canonical form of what was
// there before and after.
type Edit struct {
	Path []int
	From string
	To   string
}

// Operator is a named, self-contained mutation step. Every operator owns
// its own *rand.Rand (passed in at construction), never reads a
// package-global random source, and reports exactly what it changed.
type Operator interface {
	Name() string
}

// TreeOperator mutates one of an agent's two expression trees.
type TreeOperator interface {
	Operator
	Apply(alg model.Algorithm) (model.Algorithm, []Edit, error)
}

// MemoryOperator perturbs an agent's static memory bank.
type MemoryOperator interface {
	Operator
	Apply(memory []model.MemoryCell) ([]model.MemoryCell, []MemoryEdit, error)
}

// MemoryEdit records one static cell whose value changed.
type MemoryEdit struct {
	Index    int
	OldValue int
	NewValue int
}
