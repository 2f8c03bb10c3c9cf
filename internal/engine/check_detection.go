package engine

import "github.com/lgbarn/chess-replica-go/internal/chess"

// IsKingInCheck reports whether the colour's king is attacked by the
// opponent. A colour with no king on the board is never in check.
func (g *Game) IsKingInCheck(colour chess.Colour) bool {
	king := g.state.Board.FindKing(colour)
	if !king.Valid() {
		return false
	}
	return g.IsSquareAttacked(king.Row, king.Col, colour.Opposite())
}

// IsSquareAttacked reports whether any piece of byColour attacks the square.
// It works backwards from the square: pawn capture diagonals, knight and king
// offsets, then sliding rays stopped by the first occupant. Pawns attack
// diagonally whether or not the square is occupied.
func (g *Game) IsSquareAttacked(row, col int, byColour chess.Colour) bool {
	if byColour != chess.White && byColour != chess.Black {
		return false
	}
	board := &g.state.Board

	// Pawn attacks come from one row behind the square, from the attacker's view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRow := row - chess.PawnDirection(byColour)
	if board.Get(pawnRow, col-1) == pawn || board.Get(pawnRow, col+1) == pawn {
		return true
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(row+off[0], col+off[1]) == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(row+off[0], col+off[1]) == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	bishop := chess.MakePiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if p := firstOccupant(board, row, col, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakePiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := firstOccupant(board, row, col, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstOccupant walks from (row, col) in dir and returns the first piece it
// meets, or Empty if it runs off the board.
func firstOccupant(board *chess.Board, row, col int, dir [2]int) chess.Piece {
	r, c := row+dir[0], col+dir[1]
	for chess.InBounds(r, c) {
		if p := board.Squares[r][c]; p != chess.Empty {
			return p
		}
		r += dir[0]
		c += dir[1]
	}
	return chess.Empty
}

// squareChange records the previous content of a square touched by a trial.
type squareChange struct {
	pos   chess.Position
	piece chess.Piece
}

// undoLog collects the squares changed by a trial so they can be restored
// in reverse order.
type undoLog []squareChange

func (g *Game) trialPut(log *undoLog, pos chess.Position, piece chess.Piece) {
	*log = append(*log, squareChange{pos: pos, piece: g.state.Board.At(pos)})
	g.state.Board.Put(pos, piece)
}

func (g *Game) rollback(log undoLog) {
	for i := len(log) - 1; i >= 0; i-- {
		g.state.Board.Put(log[i].pos, log[i].piece)
	}
}

// wouldBeInCheck reports whether the colour's king would be attacked if it
// stood on (row, col). The king is lifted from its square for the test.
func (g *Game) wouldBeInCheck(colour chess.Colour, row, col int) bool {
	target := chess.At(row, col)
	if !target.Valid() {
		return false
	}

	var log undoLog
	if king := g.state.Board.FindKing(colour); king.Valid() {
		g.trialPut(&log, king, chess.Empty)
	}
	g.trialPut(&log, target, chess.MakePiece(colour, chess.King))
	attacked := g.IsSquareAttacked(row, col, colour.Opposite())
	g.rollback(log)

	return attacked
}

// wouldMoveResultInCheck plays src to dst on the board, tests whether the
// colour's king is attacked, and restores every touched square. Besides the
// origin and destination this covers the pawn removed by en passant and the
// rook moved by castling.
func (g *Game) wouldMoveResultInCheck(src, dst chess.Position, colour chess.Colour) bool {
	board := &g.state.Board
	piece := board.At(src)

	var log undoLog
	switch {
	case isEnPassantCapture(piece.Kind(), src, dst, g.state.EnPassant, board.At(dst)):
		g.trialPut(&log, chess.At(src.Row, dst.Col), chess.Empty)
	case piece.Kind() == chess.King && abs(dst.Col-src.Col) == 2:
		rookFrom, rookTo := castlingRookSquares(src, dst)
		g.trialPut(&log, rookTo, board.At(rookFrom))
		g.trialPut(&log, rookFrom, chess.Empty)
	}
	g.trialPut(&log, dst, piece)
	g.trialPut(&log, src, chess.Empty)

	inCheck := g.IsKingInCheck(colour)
	g.rollback(log)

	return inCheck
}
