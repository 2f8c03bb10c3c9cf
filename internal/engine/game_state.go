package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// Status summarizes the position for the side to move.
type Status int

const (
	StatusNormal Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// GameStatus returns the status recorded after the last applied move.
func (g *Game) GameStatus() Status {
	switch {
	case g.state.Checkmate:
		return StatusCheckmate
	case g.state.Stalemate:
		return StatusStalemate
	case g.state.Check:
		return StatusCheck
	default:
		return StatusNormal
	}
}

// updateStatus recomputes the derived flags for the side to move. It runs
// after every applied move and nowhere else.
func (g *Game) updateStatus() {
	s := &g.state
	colour := s.ToMove

	s.Check = g.IsKingInCheck(colour)
	hasMoves := g.HasValidMoves(colour)
	s.Checkmate = s.Check && !hasMoves
	s.Stalemate = !s.Check && !hasMoves
	s.GameOver = s.Checkmate || s.Stalemate

	s.Winner = chess.NoColour
	if s.Checkmate {
		s.Winner = colour.Opposite()
	}
}
