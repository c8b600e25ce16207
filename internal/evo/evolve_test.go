package evo

import (
	"math/rand"
	"testing"

	"zugzwang/internal/model"
)

func simpleAgent(id string) *model.Agent {
	leaf := &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(0)}
	return &model.Agent{
		ID:       id,
		BoardAlg: model.Algorithm{Kind: model.ProgramBoard, Root: leaf},
		MoveAlg:  model.Algorithm{Kind: model.ProgramMovement, Root: leaf},
		Memory:   model.NewMemoryBank(),
	}
}

func TestEvolveSelectsHighestScoringSurvivor(t *testing.T) {
	population := []*model.Agent{simpleAgent("a"), simpleAgent("b"), simpleAgent("c")}
	scores := map[string]float64{"a": 1, "b": 9, "c": 4}

	next, err := Evolve(population, scores, rand.New(rand.NewSource(1)), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != len(population) {
		t.Fatalf("expected next generation to keep population size %d, got %d", len(population), len(next))
	}
	// The survivor is a fresh clone, so identity differs, but it should be
	// descended from "b" (the top scorer); its own generation is updated.
	survivor := next[0]
	if survivor.Generation != 1 {
		t.Fatalf("expected survivor generation 1, got %d", survivor.Generation)
	}
	for _, cell := range survivor.DynamicMemory() {
		if cell.Value != 0 {
			t.Fatalf("expected survivor's dynamic memory to be reset")
		}
	}
}

func TestEvolveTiebreaksByMostRecentArrival(t *testing.T) {
	population := []*model.Agent{simpleAgent("older"), simpleAgent("newer")}
	scores := map[string]float64{"older": 5, "newer": 5}

	ranked := rank(population, scores)
	if ranked[0].a.ID != "newer" {
		t.Fatalf("expected a tie to favor the most recently arrived agent, got %s", ranked[0].a.ID)
	}
}

func TestEvolveEmptyPopulationReturnsError(t *testing.T) {
	_, err := Evolve(nil, map[string]float64{}, rand.New(rand.NewSource(1)), 1)
	if err != ErrEmptyPopulation {
		t.Fatalf("expected ErrEmptyPopulation, got %v", err)
	}
}

func TestMigrateReplacesOnlyTheTail(t *testing.T) {
	population := []*model.Agent{simpleAgent("a"), simpleAgent("b"), simpleAgent("c"), simpleAgent("d")}
	imports := []*model.Agent{simpleAgent("x"), simpleAgent("y")}

	next := Migrate(population, imports, 2)
	if len(next) != len(population) {
		t.Fatalf("expected migration to preserve population size, got %d", len(next))
	}
	if next[0].ID != "a" || next[1].ID != "b" {
		t.Fatalf("expected the first two slots untouched, got %s %s", next[0].ID, next[1].ID)
	}
	if next[2].ID == "x" || next[3].ID == "y" {
		t.Fatalf("migrated arrivals should get fresh identities, not carry the import's ID")
	}
	if next[2].Generation != 2 || next[3].Generation != 2 {
		t.Fatalf("expected migrated arrivals to carry the given generation")
	}
}

func TestMigrateCapsAtPopulationSize(t *testing.T) {
	population := []*model.Agent{simpleAgent("a")}
	imports := []*model.Agent{simpleAgent("x"), simpleAgent("y"), simpleAgent("z")}

	next := Migrate(population, imports, 1)
	if len(next) != 1 {
		t.Fatalf("expected migration to never grow the population, got %d", len(next))
	}
}

func TestMigrateArrivalsHaveDynamicMemoryReset(t *testing.T) {
	imp := simpleAgent("x")
	imp.DynamicMemory()[0].Value = 42

	population := []*model.Agent{simpleAgent("a")}
	next := Migrate(population, []*model.Agent{imp}, 0)

	if next[0].DynamicMemory()[0].Value != 0 {
		t.Fatalf("expected migrated arrival's dynamic memory to be reset")
	}
}
