package evo

import (
	"context"
	"math/rand"
	"testing"

	"zugzwang/internal/chessrules"
	"zugzwang/internal/match"
	"zugzwang/internal/model"
)

// badBoardAgent builds an agent whose board-scoring program references a
// variable disallowed in a board program, so any game it plays forfeits
// immediately and deterministically, without depending on real chess play.
func badBoardAgent(id string) *model.Agent {
	badLeaf := &model.Node{Kind: model.NodeVariable, Variable: model.ProvidedVariableID(model.VarDepth)}
	constLeaf := &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(0)}
	return &model.Agent{
		ID:       id,
		BoardAlg: model.Algorithm{Kind: model.ProgramBoard, Root: badLeaf},
		MoveAlg:  model.Algorithm{Kind: model.ProgramMovement, Root: constLeaf},
		Memory:   model.NewMemoryBank(),
	}
}

func TestRunTournamentPairsEveryAgentAndAggregatesFitness(t *testing.T) {
	population := []*model.Agent{
		badBoardAgent("a"), badBoardAgent("b"), badBoardAgent("c"), badBoardAgent("d"),
	}
	cfg := TournamentConfig{Match: match.Config{Adapter: chessrules.NotnilAdapter{}}, Workers: 2}
	rng := rand.New(rand.NewSource(1))

	fitness, records, err := RunTournament(context.Background(), population, rng, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 match records for 4 agents, got %d", len(records))
	}
	if len(fitness) != 4 {
		t.Fatalf("expected a fitness entry for every agent, got %d", len(fitness))
	}

	var total float64
	for _, v := range fitness {
		total += v
	}
	if total != -40 {
		t.Fatalf("expected two forfeitures totaling -40, got %v (%v)", total, fitness)
	}
}

func TestRunTournamentDropsUnpairedOddAgentWithoutError(t *testing.T) {
	population := []*model.Agent{badBoardAgent("a"), badBoardAgent("b"), badBoardAgent("c")}
	cfg := TournamentConfig{Match: match.Config{Adapter: chessrules.NotnilAdapter{}}}
	rng := rand.New(rand.NewSource(2))

	fitness, records, err := RunTournament(context.Background(), population, rng, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly 1 match record for 3 agents, got %d", len(records))
	}
	if len(fitness) != 3 {
		t.Fatalf("expected every agent to have a fitness entry even if unpaired, got %d", len(fitness))
	}
}

func TestRunTournamentDefaultsWorkers(t *testing.T) {
	cfg := TournamentConfig{}.withDefaults()
	if cfg.Workers != 4 {
		t.Fatalf("expected default worker count of 4, got %d", cfg.Workers)
	}
}
