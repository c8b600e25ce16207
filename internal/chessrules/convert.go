package chessrules

import (
	"github.com/notnil/chess"

	"zugzwang/internal/model"
)

func toModelColor(c chess.Color) model.Color {
	if c == chess.Black {
		return model.Black
	}
	return model.White
}

func toModelPieceKind(t chess.PieceType) model.PieceKind {
	switch t {
	case chess.Knight:
		return model.Knight
	case chess.Bishop:
		return model.Bishop
	case chess.Rook:
		return model.Rook
	case chess.Queen:
		return model.Queen
	case chess.King:
		return model.King
	default:
		return model.Pawn
	}
}

func toModelSquare(sq chess.Square) model.Square {
	return model.NewSquare(int(sq.File()), int(sq.Rank()))
}

func toChessSquare(sq model.Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File), chess.Rank(sq.Rank))
}

// toModelMove translates a library move into model.Move, reconstructing the
// captured piece kind from the position the move is played against (board,
// as it stood immediately before the move).
func toModelMove(mv *chess.Move, before *chess.Board) model.Move {
	out := model.Move{
		From: toModelSquare(mv.S1()),
		To:   toModelSquare(mv.S2()),
		Flags: model.MoveFlags{
			Capture:         mv.HasTag(chess.Capture),
			EnPassant:       mv.HasTag(chess.EnPassant),
			Promotion:       mv.Promo() != chess.NoPieceType,
			KingsideCastle:  mv.HasTag(chess.KingSideCastle),
			QueensideCastle: mv.HasTag(chess.QueenSideCastle),
		},
	}

	mover := before.Piece(mv.S1())
	if mover.Type() != chess.NoPieceType {
		out.Piece = toModelPieceKind(mover.Type())
	}
	if mv.Promo() != chess.NoPieceType {
		out.Promo = toModelPieceKind(mv.Promo())
	}

	if out.Flags.Capture || out.Flags.EnPassant {
		capturedSq := mv.S2()
		if out.Flags.EnPassant {
			// The captured pawn sits behind the destination square, on the
			// mover's starting rank, not on the destination square itself.
			capturedSq = chess.NewSquare(mv.S2().File(), mv.S1().Rank())
		}
		captured := before.Piece(capturedSq)
		if captured.Type() != chess.NoPieceType {
			out.HasCaptured = true
			out.Captured = toModelPieceKind(captured.Type())
		}
	}

	return out
}
