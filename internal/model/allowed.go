package model

// ProgramKindSet is a small bitmask over the two program kinds, used to
// describe which programs a given provided variable may appear in.
type ProgramKindSet uint8

const (
	AllowBoard    ProgramKindSet = 1 << iota
	AllowMovement
)

const AllowBoth = AllowBoard | AllowMovement

func (s ProgramKindSet) Allows(kind ProgramKind) bool {
	if kind == ProgramBoard {
		return s&AllowBoard != 0
	}
	return s&AllowMovement != 0
}

// ProvidedVariableAllowed pins, per provided variable, which program kinds
// may reference it — the board-scoring program sees per-square predicates
// and capture/check/draw flags; the movement-selection program additionally
// sees the running totals and search depth that only exist once move
// candidates are being compared.
var ProvidedVariableAllowed = [NumProvidedVariables]ProgramKindSet{
	VarIsSelf:                      AllowBoard,
	VarIsOpponent:                  AllowBoard,
	VarIsEmpty:                     AllowBoard,
	VarIsPawn:                      AllowBoard,
	VarIsKnight:                    AllowBoard,
	VarIsBishop:                    AllowBoard,
	VarIsRook:                      AllowBoard,
	VarIsQueen:                     AllowBoard,
	VarIsKing:                      AllowBoard,
	VarIsInCheck:                   AllowBoth,
	VarIsInCheckmate:               AllowBoth,
	VarIsDraw:                      AllowBoth,
	VarCastledKingSide:             AllowBoard,
	VarCastledQueenSide:            AllowBoard,
	VarWasCaptured:                 AllowBoard,
	VarPawnWasCaptured:             AllowBoard,
	VarKnightWasCaptured:           AllowBoard,
	VarBishopWasCaptured:           AllowBoard,
	VarRookWasCaptured:             AllowBoard,
	VarQueenWasCaptured:            AllowBoard,
	VarPossibleMoves:               AllowBoard,
	VarCanCapture:                  AllowBoard,
	VarCanCapturePawn:              AllowBoard,
	VarCanCaptureKnight:            AllowBoard,
	VarCanCaptureBishop:            AllowBoard,
	VarCanCaptureRook:              AllowBoard,
	VarCanCaptureQueen:             AllowBoard,
	VarCanMoveHere:                 AllowBoard,
	VarPawnCanMoveHere:             AllowBoard,
	VarKnightCanMoveHere:           AllowBoard,
	VarBishopCanMoveHere:           AllowBoard,
	VarRookCanMoveHere:             AllowBoard,
	VarQueenCanMoveHere:            AllowBoard,
	VarKingCanMoveHere:             AllowBoard,
	VarDepth:                       AllowMovement,
	VarFirstIterationPreMoveTotal:  AllowMovement,
	VarFirstIterationPostMoveTotal: AllowMovement,
	VarPrevIterationPreMoveTotal:   AllowMovement,
	VarPrevIterationPostMoveTotal:  AllowMovement,
	VarThisIterationPreMoveTotal:   AllowMovement,
	VarThisIterationPostMoveTotal:  AllowMovement,
}

// ProvidedVariablesFor returns every provided variable usable by programs
// of the given kind, in ascending enum order.
func ProvidedVariablesFor(kind ProgramKind) []ProvidedVariable {
	out := make([]ProvidedVariable, 0, NumProvidedVariables)
	for v := ProvidedVariable(0); v < NumProvidedVariables; v++ {
		if ProvidedVariableAllowed[v].Allows(kind) {
			out = append(out, v)
		}
	}
	return out
}
