package model

import "fmt"

// ProvidedVariable is a dense enum over every built-in variable a tree leaf
// can reference, as opposed to a VariableCustom memory-cell reference. Kept
// as a small int rather than a string so resolution stays an array index,
// never a map lookup, on the interpreter's hot path.
type ProvidedVariable int

const (
	VarIsSelf ProvidedVariable = iota
	VarIsOpponent
	VarIsEmpty
	VarIsPawn
	VarIsKnight
	VarIsBishop
	VarIsRook
	VarIsQueen
	VarIsKing
	VarIsInCheck
	VarIsInCheckmate
	VarIsDraw
	VarCastledKingSide
	VarCastledQueenSide
	VarWasCaptured
	VarPawnWasCaptured
	VarKnightWasCaptured
	VarBishopWasCaptured
	VarRookWasCaptured
	VarQueenWasCaptured
	VarPossibleMoves
	VarCanCapture
	VarCanCapturePawn
	VarCanCaptureKnight
	VarCanCaptureBishop
	VarCanCaptureRook
	VarCanCaptureQueen
	VarCanMoveHere
	VarPawnCanMoveHere
	VarKnightCanMoveHere
	VarBishopCanMoveHere
	VarRookCanMoveHere
	VarQueenCanMoveHere
	VarKingCanMoveHere
	VarDepth
	VarFirstIterationPreMoveTotal
	VarFirstIterationPostMoveTotal
	VarPrevIterationPreMoveTotal
	VarPrevIterationPostMoveTotal
	VarThisIterationPreMoveTotal
	VarThisIterationPostMoveTotal

	NumProvidedVariables
)

var providedVariableNames = [NumProvidedVariables]string{
	VarIsSelf:                      "is_self",
	VarIsOpponent:                  "is_opponent",
	VarIsEmpty:                     "is_empty",
	VarIsPawn:                      "is_pawn",
	VarIsKnight:                    "is_knight",
	VarIsBishop:                    "is_bishop",
	VarIsRook:                      "is_rook",
	VarIsQueen:                     "is_queen",
	VarIsKing:                      "is_king",
	VarIsInCheck:                   "is_in_check",
	VarIsInCheckmate:               "is_in_checkmate",
	VarIsDraw:                      "is_draw",
	VarCastledKingSide:             "castled_king_side",
	VarCastledQueenSide:            "castled_queen_side",
	VarWasCaptured:                 "was_captured",
	VarPawnWasCaptured:             "pawn_was_captured",
	VarKnightWasCaptured:           "knight_was_captured",
	VarBishopWasCaptured:           "bishop_was_captured",
	VarRookWasCaptured:             "rook_was_captured",
	VarQueenWasCaptured:            "queen_was_captured",
	VarPossibleMoves:               "possible_moves",
	VarCanCapture:                  "can_capture",
	VarCanCapturePawn:              "can_capture_pawn",
	VarCanCaptureKnight:            "can_capture_knight",
	VarCanCaptureBishop:            "can_capture_bishop",
	VarCanCaptureRook:              "can_capture_rook",
	VarCanCaptureQueen:             "can_capture_queen",
	VarCanMoveHere:                 "can_move_here",
	VarPawnCanMoveHere:             "pawn_can_move_here",
	VarKnightCanMoveHere:           "knight_can_move_here",
	VarBishopCanMoveHere:           "bishop_can_move_here",
	VarRookCanMoveHere:             "rook_can_move_here",
	VarQueenCanMoveHere:            "queen_can_move_here",
	VarKingCanMoveHere:             "king_can_move_here",
	VarDepth:                       "depth",
	VarFirstIterationPreMoveTotal:  "first_iteration_pre_move_total",
	VarFirstIterationPostMoveTotal: "first_iteration_post_move_total",
	VarPrevIterationPreMoveTotal:   "prev_iteration_pre_move_total",
	VarPrevIterationPostMoveTotal:  "prev_iteration_post_move_total",
	VarThisIterationPreMoveTotal:   "this_iteration_pre_move_total",
	VarThisIterationPostMoveTotal:  "this_iteration_post_move_total",
}

func (v ProvidedVariable) String() string {
	if v < 0 || v >= NumProvidedVariables {
		return "unknown"
	}
	return providedVariableNames[v]
}

// VariableKind distinguishes a built-in provided variable from a reference
// into an agent's own memory bank.
type VariableKind int8

const (
	VariableProvided VariableKind = iota
	VariableCustom
)

// VariableID names a single leaf value a tree node can read: either one of
// the fixed provided variables, or custom_i, the i'th memory cell.
type VariableID struct {
	Kind     VariableKind
	Provided ProvidedVariable
	Custom   int
}

func ProvidedVariableID(v ProvidedVariable) VariableID {
	return VariableID{Kind: VariableProvided, Provided: v}
}

func CustomVariableID(i int) VariableID {
	return VariableID{Kind: VariableCustom, Custom: i}
}

func (id VariableID) String() string {
	if id.Kind == VariableCustom {
		return fmt.Sprintf("custom_%d", id.Custom)
	}
	return id.Provided.String()
}

func (id VariableID) Equal(other VariableID) bool {
	return id.Kind == other.Kind && id.Provided == other.Provided && id.Custom == other.Custom
}

// ProgramKind identifies which of an agent's two programs a tree belongs to.
type ProgramKind int8

const (
	ProgramBoard ProgramKind = iota
	ProgramMovement
)

func (k ProgramKind) String() string {
	if k == ProgramBoard {
		return "board"
	}
	return "movement"
}
