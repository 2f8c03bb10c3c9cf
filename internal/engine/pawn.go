package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// pawnStartRow returns the row a colour's pawns start on.
func pawnStartRow(colour chess.Colour) int {
	return chess.BackRank(colour) + chess.PawnDirection(colour)
}

// isValidPawnMove checks single and double pushes onto empty squares,
// diagonal captures, and en passant onto the stored target.
func (g *Game) isValidPawnMove(src, dst chess.Position, colour chess.Colour) bool {
	dir := chess.PawnDirection(colour)
	rowDiff := dst.Row - src.Row
	colDiff := dst.Col - src.Col
	target := g.state.Board.At(dst)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		return src.Row == pawnStartRow(colour) &&
			g.state.Board.Get(src.Row+dir, src.Col).IsEmpty() &&
			target.IsEmpty()

	case abs(colDiff) == 1 && rowDiff == dir:
		if !target.IsEmpty() {
			return target.Colour() == colour.Opposite()
		}
		return g.isEnPassantTarget(src, dst, colour)
	}
	return false
}

// isEnPassantTarget reports whether a diagonal pawn step onto the empty dst
// captures en passant. The target belongs to the side to move, and the
// pawn that just advanced must be beside the capturer.
func (g *Game) isEnPassantTarget(src, dst chess.Position, colour chess.Colour) bool {
	if !g.state.EnPassant.Valid() || dst != g.state.EnPassant || colour != g.state.ToMove {
		return false
	}
	victim := g.state.Board.Get(src.Row, dst.Col)
	return victim == chess.MakePiece(colour.Opposite(), chess.Pawn)
}
