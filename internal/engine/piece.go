package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// Offsets of the leaping pieces as (row, col) steps.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// isValidKnightMove checks the (1,2)/(2,1) jump. Knights are never blocked.
func isValidKnightMove(src, dst chess.Position) bool {
	rowDiff := abs(dst.Row - src.Row)
	colDiff := abs(dst.Col - src.Col)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

// isValidKingMove checks a single step in any direction, or a two-square
// horizontal step that requests castling.
func (g *Game) isValidKingMove(src, dst chess.Position, colour chess.Colour) bool {
	rowDiff := abs(dst.Row - src.Row)
	colDiff := abs(dst.Col - src.Col)

	if rowDiff <= 1 && colDiff <= 1 {
		return true
	}
	if rowDiff == 0 && colDiff == 2 {
		return g.isValidCastling(src, dst, colour)
	}
	return false
}
