package match

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog/log"

	"zugzwang/internal/agent"
	"zugzwang/internal/chessrules"
	"zugzwang/internal/interp"
	"zugzwang/internal/model"
)

// Result is the outcome of one full game: the fitness delta accumulated by
// each participant, keyed by agent ID.
type Result struct {
	Fitness map[string]float64
	Plies   int
}

type colorState struct {
	depth   int
	outputs model.TurnOutputs
}

// PlayGame runs one complete game between a and b, assigning colors by a
// fair coin flip, and returns the fitness each side accumulated. It never
// returns a Go error for anything that happens inside the game itself
// (structural faults and turn timeouts are folded into the fitness result);
// it only returns an error if ctx is done on entry or at the start of a
// turn, in which case the fitness accumulated so far is returned with it.
func PlayGame(ctx context.Context, a, b *model.Agent, rng *rand.Rand, cfg Config) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	cfg = cfg.withDefaults()

	white, black := a, b
	if rng.Intn(2) == 1 {
		white, black = b, a
	}

	board := cfg.Adapter.NewGame()
	white.ResetDynamicMemory()
	black.ResetDynamicMemory()

	states := map[model.Color]*colorState{
		model.White: {},
		model.Black: {},
	}
	agentsByColor := map[model.Color]*model.Agent{
		model.White: white,
		model.Black: black,
	}

	fitness := map[string]float64{a.ID: 0, b.ID: 0}
	plies := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result{Fitness: fitness, Plies: plies}, err
		}
		if board.IsGameOver() {
			break
		}

		toMove := board.Turn()
		mover := agentsByColor[toMove]
		opponent := agentsByColor[toMove.Opponent()]
		cs := states[toMove]

		turnCtx, cancel := context.WithTimeout(ctx, cfg.TurnBudget)
		res, found, err := runTurn(turnCtx, mover, toMove, cs.depth+1, cs.outputs, board, cfg)
		cancel()

		if err != nil || !found {
			event := log.Warn().Str("mover", mover.ID).Str("opponent", opponent.ID).Str("color", toMove.String())
			if err != nil {
				event.Err(err).Msg("turn forfeited on structural fault or timeout")
			} else {
				event.Msg("turn forfeited: no legal move found")
			}
			outcome := Outcome{Timeout: true}
			outcome.apply(fitness, mover.ID, opponent.ID)
			break
		}

		cs.depth++
		cs.outputs = res.outputs
		board = res.boardAfter
		plies++

		outcome := Outcome{
			Capture:   res.move.Flags.Capture,
			Check:     board.InCheck(),
			Checkmate: board.InCheckmate(),
			Draw:      board.IsDraw() || board.IsStalemate() || board.IsThreefoldRepetition(),
		}
		outcome.apply(fitness, mover.ID, opponent.ID)
	}

	return Result{Fitness: fitness, Plies: plies}, nil
}

type turnResult struct {
	move       model.Move
	boardAfter chessrules.Board
	score      int
	outputs    model.TurnOutputs
}

// runTurn implements the per-turn move-selection procedure: a pre-move
// board scan, then for every legal move a post-move board scan and a
// movement-program evaluation, optionally recursing one level deeper when
// the movement program returns exactly zero. It is used both for a real
// turn (top-level call from PlayGame) and, recursively, to explore
// hypothetical continuations during move selection; in both cases the
// caller supplies the depth and running-outputs snapshot to build on.
func runTurn(ctx context.Context, mover *model.Agent, color model.Color, depth int, prev model.TurnOutputs, board chessrules.Board, cfg Config) (turnResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return turnResult{}, false, err
	}

	outputs := model.TurnOutputs{
		FirstPre:  prev.FirstPre,
		FirstPost: prev.FirstPost,
		PrevPre:   prev.ThisPre,
		PrevPost:  prev.ThisPost,
	}
	preCtx := &model.TurnContext{Agent: mover, Board: board, Color: color, Depth: depth, Outputs: outputs}

	thisPre, err := scanBoard(preCtx, mover.BoardAlg.Root)
	if err != nil {
		return turnResult{}, false, err
	}
	outputs.ThisPre = thisPre
	if depth == 1 {
		outputs.FirstPre = thisPre
	}

	legalMoves := board.LegalMoves()
	if len(legalMoves) == 0 {
		return turnResult{}, false, nil
	}

	var best *turnResult
	for _, mv := range legalMoves {
		if err := ctx.Err(); err != nil {
			return turnResult{}, false, err
		}

		postBoard, err := board.ApplyMove(mv)
		if err != nil {
			return turnResult{}, false, err
		}

		postAgent := agent.CloneForHypothetical(mover)
		postColor := color.Opponent()
		postOutputs := model.TurnOutputs{FirstPre: outputs.FirstPre, FirstPost: outputs.FirstPost}
		postCtx := &model.TurnContext{Agent: postAgent, Board: postBoard, Color: postColor, Depth: depth, Outputs: postOutputs}

		thisPost, err := scanBoard(postCtx, postAgent.BoardAlg.Root)
		if err != nil {
			return turnResult{}, false, err
		}
		postCtx.Outputs.ThisPost = thisPost
		if depth == 1 {
			postCtx.Outputs.FirstPost = thisPost
		}

		score, err := interp.Eval(postAgent.MoveAlg.Root, model.NewSquare(0, 0), postCtx, model.ProgramMovement)
		if err != nil {
			return turnResult{}, false, err
		}

		if score == 0 && depth < cfg.MaxSearchDepth {
			sub, ok, err := runTurn(ctx, postAgent, postColor, depth+1, postCtx.Outputs, postBoard, cfg)
			if err != nil {
				return turnResult{}, false, err
			}
			if ok {
				score = sub.score
			}
		}

		if best == nil || score > best.score {
			best = &turnResult{
				move:       mv,
				boardAfter: postBoard,
				score:      score,
				outputs: model.TurnOutputs{
					FirstPre:  outputs.FirstPre,
					FirstPost: postCtx.Outputs.FirstPost,
					PrevPre:   outputs.PrevPre,
					PrevPost:  outputs.PrevPost,
					ThisPre:   outputs.ThisPre,
					ThisPost:  postCtx.Outputs.ThisPost,
				},
			}
		}
	}

	if best == nil {
		return turnResult{}, false, nil
	}
	return *best, true, nil
}

func scanBoard(ctx *model.TurnContext, root *model.Node) (int, error) {
	total := 0
	for _, sq := range model.AllSquares {
		v, err := interp.Eval(root, sq, ctx, model.ProgramBoard)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
