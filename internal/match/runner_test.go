package match

import (
	"context"
	"math/rand"
	"testing"

	"zugzwang/internal/chessrules"
	"zugzwang/internal/model"
)

func constLeaf(custom int) *model.Node {
	return &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(custom)}
}

func TestScanBoardSumsLeafValueAcrossAllSquares(t *testing.T) {
	board := chessrules.NotnilAdapter{}.NewGame()
	a := &model.Agent{Memory: model.NewMemoryBank()}
	a.Memory[0].Value = 3
	ctx := &model.TurnContext{Agent: a, Board: board, Color: model.White}

	total, err := scanBoard(ctx, constLeaf(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3*len(model.AllSquares) {
		t.Fatalf("got %d want %d", total, 3*len(model.AllSquares))
	}
}

func TestScanBoardPropagatesStructuralError(t *testing.T) {
	board := chessrules.NotnilAdapter{}.NewGame()
	a := &model.Agent{Memory: model.NewMemoryBank()}
	ctx := &model.TurnContext{Agent: a, Board: board, Color: model.White}

	// depth is a movement-only variable; referencing it from a board scan is
	// a structural fault.
	badLeaf := &model.Node{Kind: model.NodeVariable, Variable: model.ProvidedVariableID(model.VarDepth)}
	_, err := scanBoard(ctx, badLeaf)
	if _, ok := err.(*model.StructuralError); !ok {
		t.Fatalf("expected a *model.StructuralError, got %T (%v)", err, err)
	}
}

// badBoardAgent builds an agent whose board-scoring program references a
// variable disallowed in a board program, so any scan of it fails with a
// structural error.
func badBoardAgent(id string) *model.Agent {
	badLeaf := &model.Node{Kind: model.NodeVariable, Variable: model.ProvidedVariableID(model.VarDepth)}
	return &model.Agent{
		ID:       id,
		BoardAlg: model.Algorithm{Kind: model.ProgramBoard, Root: badLeaf},
		MoveAlg:  model.Algorithm{Kind: model.ProgramMovement, Root: constLeaf(0)},
		Memory:   model.NewMemoryBank(),
	}
}

func TestPlayGameForfeitsOnStructuralFaultInBoardProgram(t *testing.T) {
	a := badBoardAgent("agent-a")
	b := badBoardAgent("agent-b")

	cfg := Config{Adapter: chessrules.NotnilAdapter{}}
	rng := rand.New(rand.NewSource(1))

	result, err := PlayGame(context.Background(), a, b, rng, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Plies != 0 {
		t.Fatalf("expected the game to end before any ply completed, got %d", result.Plies)
	}

	total := result.Fitness[a.ID] + result.Fitness[b.ID]
	if total != -20 {
		t.Fatalf("expected a single timeout forfeiture totaling -20, got %v", result.Fitness)
	}
	forfeited := result.Fitness[a.ID] == -20 || result.Fitness[b.ID] == -20
	if !forfeited {
		t.Fatalf("expected exactly one side to be charged the timeout penalty, got %v", result.Fitness)
	}
}

func TestRunTurnCapturesChosenCandidatesPostMoveOutputs(t *testing.T) {
	board := chessrules.NotnilAdapter{}.NewGame()
	mover := &model.Agent{
		BoardAlg: model.Algorithm{Kind: model.ProgramBoard, Root: constLeaf(0)},
		MoveAlg:  model.Algorithm{Kind: model.ProgramMovement, Root: constLeaf(1)},
		Memory:   model.NewMemoryBank(),
	}
	mover.Memory[0].Value = 7
	mover.Memory[1].Value = 5 // nonzero score: every candidate resolves without recursing

	cfg := Config{Adapter: chessrules.NotnilAdapter{}}.withDefaults()

	res, found, err := runTurn(context.Background(), mover, model.White, 1, model.TurnOutputs{}, board, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatalf("expected a candidate move to be found")
	}

	wantTotal := 7 * len(model.AllSquares)
	if res.outputs.ThisPost != wantTotal {
		t.Fatalf("expected this_post=%d from the chosen candidate's post-move scan, got %d", wantTotal, res.outputs.ThisPost)
	}
	if res.outputs.FirstPost != wantTotal {
		t.Fatalf("expected first_post=%d to be fixed from depth 1's chosen candidate, got %d", wantTotal, res.outputs.FirstPost)
	}
}

func TestPlayGameReturnsErrorWhenContextAlreadyDone(t *testing.T) {
	a := badBoardAgent("agent-a")
	b := badBoardAgent("agent-b")
	cfg := Config{Adapter: chessrules.NotnilAdapter{}}
	rng := rand.New(rand.NewSource(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlayGame(ctx, a, b, rng, cfg)
	if err == nil {
		t.Fatalf("expected an error when the context is already done")
	}
}
