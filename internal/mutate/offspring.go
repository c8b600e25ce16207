package mutate

import (
	"crypto/sha1"
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"zugzwang/internal/model"
	"zugzwang/internal/token"
)

// ContentHash fingerprints an agent's two trees plus its full memory, with
// dynamic cells treated as zero so two offspring that differ only in
// leftover scratch memory still collide and get rejected as duplicates.
func ContentHash(a *model.Agent) string {
	var b strings.Builder
	b.WriteString(token.Canonical(a.BoardAlg.Root))
	b.WriteByte('|')
	b.WriteString(token.Canonical(a.MoveAlg.Root))
	b.WriteByte('|')
	for i, cell := range a.Memory {
		v := cell.Value
		if i >= model.StaticMemoryCells {
			v = 0
		}
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(v))
	}
	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Offspring produces k agents descended from parent: child 0 is an exact
// clone of parent with dynamic memory zeroed and no mutation applied; the
// remaining k-1 are produced by mutating both trees and static memory, then
// rejecting any whose content hash collides with one already produced
// (including child 0), retrying until unique or the attempt budget (10*(k+1))
// is exhausted.
func Offspring(parent *model.Agent, k int, rng *rand.Rand, generation int) ([]*model.Agent, error) {
	if k <= 0 {
		return nil, nil
	}

	children := make([]*model.Agent, 0, k)
	seen := make(map[string]bool)

	clone := cloneAgent(parent, generation)
	clone.ResetDynamicMemory()
	children = append(children, clone)
	seen[ContentHash(clone)] = true

	treeOp := RandomTreeMutation{Rand: rng}
	memOp := RandomMemoryMutation{Rand: rng}

	budget := 10 * (k + 1)
	for attempts := 0; len(children) < k && attempts < budget; attempts++ {
		candidate := cloneAgent(parent, generation)

		boardAlg, _, err := treeOp.Apply(candidate.BoardAlg)
		if err != nil && err != ErrNoMutation {
			return nil, err
		}
		candidate.BoardAlg = boardAlg

		moveAlg, _, err := treeOp.Apply(candidate.MoveAlg)
		if err != nil && err != ErrNoMutation {
			return nil, err
		}
		candidate.MoveAlg = moveAlg

		memory, _, err := memOp.Apply(candidate.Memory[:model.StaticMemoryCells])
		if err != nil {
			return nil, err
		}
		copy(candidate.Memory[:model.StaticMemoryCells], memory)
		candidate.ResetDynamicMemory()

		hash := ContentHash(candidate)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		candidate.ID = uuid.NewString()
		children = append(children, candidate)
	}

	return children, nil
}

func cloneAgent(a *model.Agent, generation int) *model.Agent {
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
