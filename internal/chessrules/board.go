package chessrules

import (
	"fmt"

	"github.com/notnil/chess"

	"zugzwang/internal/model"
)

// Board is the mutable chess rules collaborator the Game Runner drives: a
// read-only snapshot (model.BoardView) plus the ability to apply a move and
// obtain a new, independent Board for it.
type Board interface {
	model.BoardView
	ApplyMove(mv model.Move) (Board, error)
	Clone() Board
	FEN() string
}

type notnilBoard struct {
	game     *chess.Game
	lastMove model.Move
	hasLast  bool
	inCheck  bool
}

func wrap(g *chess.Game) *notnilBoard {
	return &notnilBoard{game: g}
}

func (b *notnilBoard) Turn() model.Color {
	return toModelColor(b.game.Position().Turn())
}

func (b *notnilBoard) PieceAt(sq model.Square) (model.PieceKind, model.Color, bool) {
	piece := b.game.Position().Board().Piece(toChessSquare(sq))
	if piece.Type() == chess.NoPieceType {
		return 0, 0, false
	}
	return toModelPieceKind(piece.Type()), toModelColor(piece.Color()), true
}

func (b *notnilBoard) LegalMoves() []model.Move {
	before := b.game.Position().Board()
	valid := b.game.ValidMoves()
	moves := make([]model.Move, len(valid))
	for i, mv := range valid {
		moves[i] = toModelMove(mv, before)
	}
	return moves
}

func (b *notnilBoard) LastMove() (model.Move, bool) {
	return b.lastMove, b.hasLast
}

func (b *notnilBoard) InCheck() bool {
	return b.hasLast && b.inCheck
}

func (b *notnilBoard) InCheckmate() bool {
	return b.game.Outcome() != chess.NoOutcome && b.game.Method() == chess.Checkmate
}

func (b *notnilBoard) IsStalemate() bool {
	return b.game.Outcome() != chess.NoOutcome && b.game.Method() == chess.Stalemate
}

func (b *notnilBoard) IsThreefoldRepetition() bool {
	return b.game.Outcome() != chess.NoOutcome && b.game.Method() == chess.ThreefoldRepetition
}

func (b *notnilBoard) IsDraw() bool {
	return b.game.Outcome() == chess.Draw
}

func (b *notnilBoard) IsGameOver() bool {
	return b.game.Outcome() != chess.NoOutcome
}

func (b *notnilBoard) ApplyMove(mv model.Move) (Board, error) {
	target := findLibraryMove(b.game, mv)
	if target == nil {
		return nil, model.NewStructuralError(fmt.Sprintf("no legal move %s-%s on this board", mv.From, mv.To))
	}

	before := b.game.Position().Board()
	converted := toModelMove(target, before)

	next := b.game.Clone()
	if err := next.Move(target); err != nil {
		return nil, model.NewStructuralError("chess rules rejected move: " + err.Error())
	}

	return &notnilBoard{
		game:     next,
		lastMove: converted,
		hasLast:  true,
		inCheck:  target.HasTag(chess.Check),
	}, nil
}

func (b *notnilBoard) Clone() Board {
	return &notnilBoard{
		game:     b.game.Clone(),
		lastMove: b.lastMove,
		hasLast:  b.hasLast,
		inCheck:  b.inCheck,
	}
}

func (b *notnilBoard) FEN() string {
	return b.game.Position().String()
}

// findLibraryMove locates the legal move matching mv's from/to/promotion,
// since the adapter boundary exchanges model.Move values rather than
// library move handles.
func findLibraryMove(g *chess.Game, mv model.Move) *chess.Move {
	from := toChessSquare(mv.From)
	to := toChessSquare(mv.To)
	for _, candidate := range g.ValidMoves() {
		if candidate.S1() != from || candidate.S2() != to {
			continue
		}
		if mv.Flags.Promotion {
			if toModelPieceKind(candidate.Promo()) != mv.Promo {
				continue
			}
		}
		return candidate
	}
	return nil
}
