package model

// MoveFlags records the tags a chess rules adapter attaches to a legal
// move; they back the is_*-capture and castling provided variables.
type MoveFlags struct {
	Capture         bool
	EnPassant       bool
	Promotion       bool
	KingsideCastle  bool
	QueensideCastle bool
}

// Move is a single legal or played move, translated out of whatever the
// chess rules adapter's own move type looks like.
type Move struct {
	From, To    Square
	Piece       PieceKind
	HasCaptured bool
	Captured    PieceKind
	Promo       PieceKind
	Flags       MoveFlags
}

// BoardView is the read-only slice of the chess rules collaborator that the
// variable provider needs: a snapshot of one position. The chessrules
// package supplies concrete implementations; mutation (applying a move,
// cloning) lives on the richer chessrules.Board interface, kept out of this
// package to avoid a dependency cycle (chessrules depends on model, not the
// other way around).
type BoardView interface {
	Turn() Color
	PieceAt(sq Square) (PieceKind, Color, bool)
	LegalMoves() []Move
	LastMove() (Move, bool)
	InCheck() bool
	InCheckmate() bool
	IsStalemate() bool
	IsThreefoldRepetition() bool
	IsDraw() bool
	IsGameOver() bool
}
