package variable

import "zugzwang/internal/model"

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func init() {
	register(model.VarIsSelf, resolveIsSelf)
	register(model.VarIsOpponent, resolveIsOpponent)
	register(model.VarIsEmpty, resolveIsEmpty)

	registerPieceKindFamily(model.VarIsPawn, model.Pawn)
	registerPieceKindFamily(model.VarIsKnight, model.Knight)
	registerPieceKindFamily(model.VarIsBishop, model.Bishop)
	registerPieceKindFamily(model.VarIsRook, model.Rook)
	registerPieceKindFamily(model.VarIsQueen, model.Queen)
	registerPieceKindFamily(model.VarIsKing, model.King)

	register(model.VarIsInCheck, resolveIsInCheck)
	register(model.VarIsInCheckmate, resolveIsInCheckmate)
	register(model.VarIsDraw, resolveIsDraw)

	register(model.VarCastledKingSide, resolveCastled(true))
	register(model.VarCastledQueenSide, resolveCastled(false))

	register(model.VarWasCaptured, resolveWasCaptured(nil))
	registerWasCapturedFamily(model.VarPawnWasCaptured, model.Pawn)
	registerWasCapturedFamily(model.VarKnightWasCaptured, model.Knight)
	registerWasCapturedFamily(model.VarBishopWasCaptured, model.Bishop)
	registerWasCapturedFamily(model.VarRookWasCaptured, model.Rook)
	registerWasCapturedFamily(model.VarQueenWasCaptured, model.Queen)

	register(model.VarPossibleMoves, resolvePossibleMoves)

	register(model.VarCanCapture, resolveCanCapture(nil))
	registerCanCaptureFamily(model.VarCanCapturePawn, model.Pawn)
	registerCanCaptureFamily(model.VarCanCaptureKnight, model.Knight)
	registerCanCaptureFamily(model.VarCanCaptureBishop, model.Bishop)
	registerCanCaptureFamily(model.VarCanCaptureRook, model.Rook)
	registerCanCaptureFamily(model.VarCanCaptureQueen, model.Queen)

	register(model.VarCanMoveHere, resolveCanMoveHere(nil))
	registerCanMoveHereFamily(model.VarPawnCanMoveHere, model.Pawn)
	registerCanMoveHereFamily(model.VarKnightCanMoveHere, model.Knight)
	registerCanMoveHereFamily(model.VarBishopCanMoveHere, model.Bishop)
	registerCanMoveHereFamily(model.VarRookCanMoveHere, model.Rook)
	registerCanMoveHereFamily(model.VarQueenCanMoveHere, model.Queen)
	registerCanMoveHereFamily(model.VarKingCanMoveHere, model.King)

	register(model.VarDepth, resolveDepth)
	register(model.VarFirstIterationPreMoveTotal, outputField(func(o model.TurnOutputs) int { return o.FirstPre }))
	register(model.VarFirstIterationPostMoveTotal, outputField(func(o model.TurnOutputs) int { return o.FirstPost }))
	register(model.VarPrevIterationPreMoveTotal, outputField(func(o model.TurnOutputs) int { return o.PrevPre }))
	register(model.VarPrevIterationPostMoveTotal, outputField(func(o model.TurnOutputs) int { return o.PrevPost }))
	register(model.VarThisIterationPreMoveTotal, outputField(func(o model.TurnOutputs) int { return o.ThisPre }))
	register(model.VarThisIterationPostMoveTotal, outputField(func(o model.TurnOutputs) int { return o.ThisPost }))
}

func resolveIsSelf(sq model.Square, ctx *model.TurnContext) (int, error) {
	_, color, ok := ctx.Board.PieceAt(sq)
	return boolToInt(ok && color == ctx.Color), nil
}

func resolveIsOpponent(sq model.Square, ctx *model.TurnContext) (int, error) {
	_, color, ok := ctx.Board.PieceAt(sq)
	return boolToInt(ok && color == ctx.Color.Opponent()), nil
}

func resolveIsEmpty(sq model.Square, ctx *model.TurnContext) (int, error) {
	_, _, ok := ctx.Board.PieceAt(sq)
	return boolToInt(!ok), nil
}

func registerPieceKindFamily(v model.ProvidedVariable, kind model.PieceKind) {
	register(v, func(sq model.Square, ctx *model.TurnContext) (int, error) {
		piece, _, ok := ctx.Board.PieceAt(sq)
		return boolToInt(ok && piece == kind), nil
	})
}

func resolveIsInCheck(sq model.Square, ctx *model.TurnContext) (int, error) {
	return boolToInt(ctx.Board.InCheck()), nil
}

func resolveIsInCheckmate(sq model.Square, ctx *model.TurnContext) (int, error) {
	return boolToInt(ctx.Board.InCheckmate()), nil
}

func resolveIsDraw(sq model.Square, ctx *model.TurnContext) (int, error) {
	return boolToInt(ctx.Board.IsDraw()), nil
}

func resolveCastled(kingSide bool) ResolveFunc {
	return func(sq model.Square, ctx *model.TurnContext) (int, error) {
		last, ok := ctx.Board.LastMove()
		if !ok || last.To != sq {
			return 0, nil
		}
		if kingSide {
			return boolToInt(last.Flags.KingsideCastle), nil
		}
		return boolToInt(last.Flags.QueensideCastle), nil
	}
}

func resolveWasCaptured(filter *model.PieceKind) ResolveFunc {
	return func(sq model.Square, ctx *model.TurnContext) (int, error) {
		last, ok := ctx.Board.LastMove()
		if !ok || !last.HasCaptured || last.To != sq {
			return 0, nil
		}
		if filter != nil && last.Captured != *filter {
			return 0, nil
		}
		return 1, nil
	}
}

func registerWasCapturedFamily(v model.ProvidedVariable, kind model.PieceKind) {
	register(v, resolveWasCaptured(&kind))
}

func resolvePossibleMoves(sq model.Square, ctx *model.TurnContext) (int, error) {
	count := 0
	for _, mv := range ctx.Board.LegalMoves() {
		if mv.From == sq {
			count++
		}
	}
	return count, nil
}

func resolveCanCapture(filter *model.PieceKind) ResolveFunc {
	return func(sq model.Square, ctx *model.TurnContext) (int, error) {
		count := 0
		for _, mv := range ctx.Board.LegalMoves() {
			if mv.From != sq || !mv.Flags.Capture {
				continue
			}
			if filter != nil && (!mv.HasCaptured || mv.Captured != *filter) {
				continue
			}
			count++
		}
		return count, nil
	}
}

func registerCanCaptureFamily(v model.ProvidedVariable, kind model.PieceKind) {
	register(v, resolveCanCapture(&kind))
}

func resolveCanMoveHere(filter *model.PieceKind) ResolveFunc {
	return func(sq model.Square, ctx *model.TurnContext) (int, error) {
		count := 0
		for _, mv := range ctx.Board.LegalMoves() {
			if mv.To != sq {
				continue
			}
			if filter != nil && mv.Piece != *filter {
				continue
			}
			count++
		}
		return count, nil
	}
}

func registerCanMoveHereFamily(v model.ProvidedVariable, kind model.PieceKind) {
	register(v, resolveCanMoveHere(&kind))
}

func resolveDepth(sq model.Square, ctx *model.TurnContext) (int, error) {
	return ctx.Depth, nil
}

func outputField(get func(model.TurnOutputs) int) ResolveFunc {
	return func(sq model.Square, ctx *model.TurnContext) (int, error) {
		return get(ctx.Outputs), nil
	}
}
