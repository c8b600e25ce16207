package model

// Agent is a pair of expression trees (board-scoring and move-selection)
// plus the ordered memory bank they share. ID is opaque and is the only
// thing callers should use for identity/equality purposes.
type Agent struct {
	ID         string
	Generation int
	BoardAlg   Algorithm
	MoveAlg    Algorithm
	Memory     []MemoryCell
}

func (a *Agent) StaticMemory() []MemoryCell { return a.Memory[:StaticMemoryCells] }

func (a *Agent) DynamicMemory() []MemoryCell { return a.Memory[StaticMemoryCells:] }

// ResetDynamicMemory zeroes the dynamic region, leaving static cells
// untouched. Called at the start of every game and whenever an agent is
// installed into a new population slot (elite survivor, offspring, or
// migrant arrival).
func (a *Agent) ResetDynamicMemory() {
	dyn := a.DynamicMemory()
	for i := range dyn {
		dyn[i].Value = 0
	}
}
