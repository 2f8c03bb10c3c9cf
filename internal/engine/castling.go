package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// isValidCastling checks a king's two-square step from its original square.
// The rights flag stands in for "king and rook have not moved"; the rook
// must still be on its corner, the squares between must be empty, and the
// king may not start in, pass through or land in check.
func (g *Game) isValidCastling(src, dst chess.Position, colour chess.Colour) bool {
	row := chess.BackRank(colour)
	if src != chess.At(row, chess.KingCol) || dst.Row != row {
		return false
	}

	kingside := dst.Col > src.Col
	rights := g.state.Castling.For(colour)
	rookCol := chess.QueensideRookCol
	if kingside {
		if !rights.Kingside {
			return false
		}
		rookCol = chess.KingsideRookCol
	} else if !rights.Queenside {
		return false
	}

	if g.state.Board.Get(row, rookCol) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	if !g.state.Board.IsPathClear(row, src.Col, row, rookCol) {
		return false
	}
	if g.IsKingInCheck(colour) {
		return false
	}

	step := sign(dst.Col - src.Col)
	for col := src.Col + step; col != dst.Col+step; col += step {
		if g.wouldBeInCheck(colour, row, col) {
			return false
		}
	}
	return true
}
