package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// Sliding directions as (row, col) steps.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// isValidBishopMove checks a diagonal with nothing in between.
func (g *Game) isValidBishopMove(src, dst chess.Position) bool {
	if abs(dst.Row-src.Row) != abs(dst.Col-src.Col) {
		return false
	}
	return g.state.Board.IsPathClear(src.Row, src.Col, dst.Row, dst.Col)
}

// isValidRookMove checks a rank or file with nothing in between.
func (g *Game) isValidRookMove(src, dst chess.Position) bool {
	if src.Row != dst.Row && src.Col != dst.Col {
		return false
	}
	return g.state.Board.IsPathClear(src.Row, src.Col, dst.Row, dst.Col)
}

// isValidQueenMove combines the rook and bishop patterns.
func (g *Game) isValidQueenMove(src, dst chess.Position) bool {
	return g.isValidRookMove(src, dst) || g.isValidBishopMove(src, dst)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
