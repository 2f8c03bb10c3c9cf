package chess

// CastlingRights records whether a king may still castle on each side,
// regardless of whether castling is legal right now.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Castling holds the rights of both players.
type Castling struct {
	White CastlingRights
	Black CastlingRights
}

// FullCastling is the starting rights: everything available.
var FullCastling = Castling{
	White: CastlingRights{Kingside: true, Queenside: true},
	Black: CastlingRights{Kingside: true, Queenside: true},
}

// For returns the rights of the given colour.
func (c Castling) For(colour Colour) CastlingRights {
	if colour == Black {
		return c.Black
	}
	return c.White
}

// Revoke clears the selected rights of a colour. Rights are never granted
// back, so this only moves flags from true to false.
func (c *Castling) Revoke(colour Colour, kingside, queenside bool) {
	rights := &c.White
	if colour == Black {
		rights = &c.Black
	}
	if kingside {
		rights.Kingside = false
	}
	if queenside {
		rights.Queenside = false
	}
}

// RevokeCorner clears the right tied to the rook starting on the given
// square, if the square is one of the four original rook corners.
func (c *Castling) RevokeCorner(pos Position) {
	for _, colour := range []Colour{White, Black} {
		if pos.Row != BackRank(colour) {
			continue
		}
		switch pos.Col {
		case KingsideRookCol:
			c.Revoke(colour, true, false)
		case QueensideRookCol:
			c.Revoke(colour, false, true)
		}
	}
}

// Original files of the castling pieces.
const (
	KingCol          = 4
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0
)
