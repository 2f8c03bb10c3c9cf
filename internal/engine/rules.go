package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// isLegalMove checks the movement pattern of the piece on src, including
// blocking and castling preconditions. It does not check whether the mover
// owns the piece, whether dst holds a friendly piece, or king safety after
// the move; ApplyMove and the enumerator check those separately.
func (g *Game) isLegalMove(src, dst chess.Position) bool {
	if src == dst || !src.Valid() || !dst.Valid() {
		return false
	}
	piece := g.state.Board.At(src)
	colour := piece.Colour()

	switch piece.Kind() {
	case chess.Pawn:
		return g.isValidPawnMove(src, dst, colour)
	case chess.Knight:
		return isValidKnightMove(src, dst)
	case chess.Bishop:
		return g.isValidBishopMove(src, dst)
	case chess.Rook:
		return g.isValidRookMove(src, dst)
	case chess.Queen:
		return g.isValidQueenMove(src, dst)
	case chess.King:
		return g.isValidKingMove(src, dst, colour)
	}
	return false
}
