package engine

import (
	"fmt"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// Move is a single move in long algebraic form.
type Move struct {
	From        chess.Position
	To          chess.Position
	Promotion   chess.PromotionChoice
	IsPromotion bool
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += m.Promotion.String()
	}
	return s
}

// ParseMove parses long algebraic notation. A fifth character selects the
// promotion piece.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	m := Move{
		From: chess.ParseSquare(s[0:2]),
		To:   chess.ParseSquare(s[2:4]),
	}
	if !m.From.Valid() || !m.To.Valid() {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	if len(s) == 5 {
		p, ok := chess.ParsePromotion(s[4:])
		if !ok {
			return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPromotion)
		}
		m.Promotion = p
		m.IsPromotion = true
	}
	return m, nil
}
