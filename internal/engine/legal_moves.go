package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// ValidMoves returns the legal destinations of the piece on (row, col).
// The result is empty when the square is empty or holds a piece of the side
// not to move.
func (g *Game) ValidMoves(row, col int) []chess.Position {
	src := chess.At(row, col)
	moves := make([]chess.Position, 0, 8)
	if !g.state.Board.At(src).IsOwnedBy(g.state.ToMove) {
		return moves
	}
	g.forEachDestination(src, g.state.ToMove, func(dst chess.Position) bool {
		moves = append(moves, dst)
		return true
	})
	return moves
}

// MovablePieces returns, in row-major order, every square holding a piece
// of the colour that has at least one legal destination.
func (g *Game) MovablePieces(colour chess.Colour) []chess.Position {
	pieces := make([]chess.Position, 0, 16)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			src := chess.At(row, col)
			if !g.state.Board.At(src).IsOwnedBy(colour) {
				continue
			}
			if g.hasDestination(src, colour) {
				pieces = append(pieces, src)
			}
		}
	}
	return pieces
}

// HasValidMoves reports whether the colour has any legal move. It stops at
// the first one found.
func (g *Game) HasValidMoves(colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			src := chess.At(row, col)
			if g.state.Board.At(src).IsOwnedBy(colour) && g.hasDestination(src, colour) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move for the side to move. A pawn reaching
// the last rank yields one move per promotion piece.
func (g *Game) LegalMoves() []Move {
	colour := g.state.ToMove
	moves := make([]Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			src := chess.At(row, col)
			piece := g.state.Board.At(src)
			if !piece.IsOwnedBy(colour) {
				continue
			}
			promotes := piece.Kind() == chess.Pawn
			g.forEachDestination(src, colour, func(dst chess.Position) bool {
				if promotes && dst.Row == chess.BackRank(colour.Opposite()) {
					for _, p := range promotionChoices {
						moves = append(moves, Move{From: src, To: dst, Promotion: p, IsPromotion: true})
					}
				} else {
					moves = append(moves, Move{From: src, To: dst})
				}
				return true
			})
		}
	}
	return moves
}

var promotionChoices = [4]chess.PromotionChoice{
	chess.PromoteQueen, chess.PromoteRook, chess.PromoteBishop, chess.PromoteKnight,
}

func (g *Game) hasDestination(src chess.Position, colour chess.Colour) bool {
	found := false
	g.forEachDestination(src, colour, func(chess.Position) bool {
		found = true
		return false
	})
	return found
}

// forEachDestination generates the plausible destinations of the piece on
// src and calls fn with each one that passes the same checks as ApplyMove.
// Iteration stops when fn returns false.
func (g *Game) forEachDestination(src chess.Position, colour chess.Colour, fn func(chess.Position) bool) {
	piece := g.state.Board.At(src)
	for _, dst := range g.candidates(src, piece) {
		if !dst.Valid() || g.state.Board.At(dst).IsOwnedBy(colour) {
			continue
		}
		if !g.isLegalMove(src, dst) || g.wouldMoveResultInCheck(src, dst, colour) {
			continue
		}
		if !fn(dst) {
			return
		}
	}
}

// candidates lists the squares a piece could reach by geometry alone.
// Sliding rays stop at the first occupied square and include it only when
// it holds an enemy piece.
func (g *Game) candidates(src chess.Position, piece chess.Piece) []chess.Position {
	colour := piece.Colour()
	out := make([]chess.Position, 0, 16)

	switch piece.Kind() {
	case chess.Pawn:
		dir := chess.PawnDirection(colour)
		out = append(out,
			chess.At(src.Row+dir, src.Col),
			chess.At(src.Row+2*dir, src.Col),
			chess.At(src.Row+dir, src.Col-1),
			chess.At(src.Row+dir, src.Col+1),
		)

	case chess.Knight:
		for _, off := range knightOffsets {
			out = append(out, chess.At(src.Row+off[0], src.Col+off[1]))
		}

	case chess.King:
		for _, off := range kingOffsets {
			out = append(out, chess.At(src.Row+off[0], src.Col+off[1]))
		}
		out = append(out, chess.At(src.Row, src.Col+2), chess.At(src.Row, src.Col-2))

	case chess.Bishop:
		out = g.appendRays(out, src, colour, diagonalDirs[:])

	case chess.Rook:
		out = g.appendRays(out, src, colour, straightDirs[:])

	case chess.Queen:
		out = g.appendRays(out, src, colour, diagonalDirs[:])
		out = g.appendRays(out, src, colour, straightDirs[:])
	}
	return out
}

func (g *Game) appendRays(out []chess.Position, src chess.Position, colour chess.Colour, dirs [][2]int) []chess.Position {
	for _, dir := range dirs {
		r, c := src.Row+dir[0], src.Col+dir[1]
		for chess.InBounds(r, c) {
			p := g.state.Board.Get(r, c)
			if p.IsEmpty() {
				out = append(out, chess.At(r, c))
			} else {
				if p.Colour() != colour {
					out = append(out, chess.At(r, c))
				}
				break
			}
			r += dir[0]
			c += dir[1]
		}
	}
	return out
}
