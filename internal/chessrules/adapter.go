package chessrules

import (
	"fmt"

	"github.com/notnil/chess"
)

// Adapter constructs Boards. NotnilAdapter is the only implementation; the
// interface exists so internal/match never imports github.com/notnil/chess
// directly.
type Adapter interface {
	NewGame() Board
	FromFEN(fen string) (Board, error)
}

type NotnilAdapter struct{}

func (NotnilAdapter) NewGame() Board {
	return wrap(chess.NewGame())
}

func (NotnilAdapter) FromFEN(fen string) (Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN: %w", err)
	}
	return wrap(chess.NewGame(opt)), nil
}
