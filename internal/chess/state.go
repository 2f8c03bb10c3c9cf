package chess

// State captures everything needed to resume or replicate a game: the
// board plus the auxiliary flags. It is a plain value, so copying it takes
// a snapshot and == compares two states exactly.
type State struct {
	Board     Board
	ToMove    Colour
	Castling  Castling
	EnPassant Position

	// Derived status, recomputed by the rules engine after every move.
	GameOver  bool
	Winner    Colour
	Check     bool
	Checkmate bool
	Stalemate bool
}

// NewInitialState returns the state of a fresh game.
func NewInitialState() State {
	s := State{
		ToMove:    White,
		Castling:  FullCastling,
		EnPassant: NoPosition,
		Winner:    NoColour,
	}
	s.Board.SetupInitialPosition()
	return s
}
