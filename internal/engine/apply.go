package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// MoveOutcome reports the result of ApplyMove. On failure Err wraps one of
// the sentinel errors and the game state is unchanged.
type MoveOutcome struct {
	Success bool
	Message string
	Err     error
}

// ApplyMove validates and applies a move given as two square names such as
// "e2" and "e4". The promotion choice is only consulted when a pawn reaches
// the last rank.
func (g *Game) ApplyMove(from, to string, promotion chess.PromotionChoice) MoveOutcome {
	src := chess.ParseSquare(from)
	if !src.Valid() {
		return g.reject(errors.ErrInvalidSquare, from, to, fmt.Sprintf("invalid square %q", from))
	}
	dst := chess.ParseSquare(to)
	if !dst.Valid() {
		return g.reject(errors.ErrInvalidSquare, from, to, fmt.Sprintf("invalid square %q", to))
	}
	if !promotion.Valid() {
		return g.reject(errors.ErrInvalidPromotion, from, to, "invalid promotion choice")
	}
	if g.state.GameOver {
		return g.reject(errors.ErrGameOver, from, to, "the game is over")
	}

	colour := g.state.ToMove
	piece := g.state.Board.At(src)
	if piece.IsEmpty() {
		return g.reject(errors.ErrNoPiece, from, to, fmt.Sprintf("no piece at %s", src))
	}
	if !piece.IsOwnedBy(colour) {
		return g.reject(errors.ErrWrongTurn, from, to, fmt.Sprintf("it is %s's turn", colour))
	}
	if g.state.Board.At(dst).IsOwnedBy(colour) {
		return g.reject(errors.ErrOwnPiece, from, to, fmt.Sprintf("cannot capture own piece on %s", dst))
	}
	if !g.isLegalMove(src, dst) {
		return g.reject(errors.ErrIllegalMove, from, to,
			fmt.Sprintf("illegal move for %s from %s to %s", piece, src, dst))
	}
	if g.wouldMoveResultInCheck(src, dst, colour) {
		return g.reject(errors.ErrKingInCheck, from, to, "move would leave the king in check")
	}

	message := g.execute(src, dst, promotion)
	g.ply++
	g.updateStatus()

	switch {
	case g.state.Checkmate:
		message += " - checkmate"
	case g.state.Stalemate:
		message += " - stalemate (draw)"
	case g.state.Check:
		message += " - check"
	}
	return MoveOutcome{Success: true, Message: message}
}

// Play applies a move produced by the enumerator or ParseMove.
func (g *Game) Play(m Move) MoveOutcome {
	return g.ApplyMove(m.From.String(), m.To.String(), m.Promotion)
}

func (g *Game) reject(sentinel error, from, to, message string) MoveOutcome {
	return MoveOutcome{
		Message: message,
		Err:     &errors.MoveError{Err: sentinel, From: from, To: to, Ply: g.ply + 1},
	}
}

// execute performs an already validated move and returns its description.
func (g *Game) execute(src, dst chess.Position, promotion chess.PromotionChoice) string {
	s := &g.state
	piece := s.Board.At(src)
	captured := s.Board.At(dst)
	colour := piece.Colour()
	kind := piece.Kind()

	enPassant := s.EnPassant
	s.EnPassant = chess.NoPosition

	var description string
	switch {
	case isEnPassantCapture(kind, src, dst, enPassant, captured):
		s.Board.Set(src.Row, dst.Col, chess.Empty)
		description = fmt.Sprintf("%s takes %s en passant", src, dst)

	case kind == chess.King && abs(dst.Col-src.Col) == 2:
		rookFrom, rookTo := castlingRookSquares(src, dst)
		s.Board.Put(rookTo, s.Board.At(rookFrom))
		s.Board.Put(rookFrom, chess.Empty)
		if dst.Col > src.Col {
			description = "kingside castling"
		} else {
			description = "queenside castling"
		}

	case !captured.IsEmpty():
		description = fmt.Sprintf("%s takes %s (%s)", src, dst, captured)

	default:
		description = fmt.Sprintf("%s to %s", src, dst)
	}

	s.Board.Put(dst, piece)
	s.Board.Put(src, chess.Empty)

	if kind == chess.Pawn && dst.Row == chess.BackRank(colour.Opposite()) {
		s.Board.Put(dst, chess.MakePiece(colour, promotion.Kind()))
		description += ", promoted to " + strings.ToLower(promotion.Kind().String())
	}

	g.updateCastlingRights(piece, src, dst, captured)

	if kind == chess.Pawn && abs(dst.Row-src.Row) == 2 {
		s.EnPassant = chess.At((src.Row+dst.Row)/2, src.Col)
	}

	s.ToMove = colour.Opposite()
	return description
}

// updateCastlingRights clears rights lost by this move. A king move costs
// both sides, a rook leaving its original corner costs that side, and a
// capture on an original rook corner costs the victim that side.
func (g *Game) updateCastlingRights(piece chess.Piece, src, dst chess.Position, captured chess.Piece) {
	colour := piece.Colour()
	switch piece.Kind() {
	case chess.King:
		g.state.Castling.Revoke(colour, true, true)
	case chess.Rook:
		if src.Row == chess.BackRank(colour) {
			g.state.Castling.RevokeCorner(src)
		}
	}
	if !captured.IsEmpty() {
		g.state.Castling.RevokeCorner(dst)
	}
}

// isEnPassantCapture reports whether a pawn move lands diagonally on the
// empty en passant target.
func isEnPassantCapture(kind chess.Kind, src, dst, target chess.Position, captured chess.Piece) bool {
	return kind == chess.Pawn && target.Valid() && dst == target &&
		captured.IsEmpty() && src.Col != dst.Col
}

// castlingRookSquares returns the rook's origin and destination for a king
// moving two squares from src to dst.
func castlingRookSquares(src, dst chess.Position) (from, to chess.Position) {
	if dst.Col > src.Col {
		return chess.At(src.Row, chess.KingsideRookCol), chess.At(src.Row, dst.Col-1)
	}
	return chess.At(src.Row, chess.QueensideRookCol), chess.At(src.Row, dst.Col+1)
}
