package engine

import (
	"testing"

	"github.com/lgbarn/chess-replica-go/internal/chess"
)

func TestIsLegalMove_Patterns(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     bool
	}{
		{"pawn single push", InitialFEN, "e2", "e3", true},
		{"pawn double push", InitialFEN, "e2", "e4", true},
		{"pawn double push off start rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", "e5", false},
		{"black pawn double push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "d7", "d5", true},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", true},
		{"pawn capture backwards", "4k3/8/8/8/4P3/3p4/8/4K3 w - - 0 1", "e4", "d3", false},
		{"knight jump over pieces", InitialFEN, "b1", "c3", true},
		{"knight straight", InitialFEN, "b1", "b3", false},
		{"bishop open diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "h6", true},
		{"bishop not diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "c4", false},
		{"rook open file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", true},
		{"rook through piece", "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1", "a1", "a8", false},
		{"rook captures blocker", "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1", "a1", "a4", true},
		{"queen diagonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "h5", true},
		{"queen straight", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "d8", true},
		{"queen knight-shaped", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "e3", false},
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "d2", true},
		{"king castles kingside", castlingFEN, "e1", "g1", true},
		{"king three squares", castlingFEN, "e1", "h1", false},
		{"same square", InitialFEN, "e2", "e2", false},
		{"empty origin", InitialFEN, "e4", "e5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			got := g.isLegalMove(chess.ParseSquare(tt.from), chess.ParseSquare(tt.to))
			if got != tt.want {
				t.Errorf("isLegalMove(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		by     chess.Colour
		want   bool
	}{
		{"white pawn attacks diagonally", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "d3", chess.White, true},
		{"white pawn does not attack ahead", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e3", chess.White, false},
		{"black pawn attacks downward", "4k3/4p3/8/8/8/8/8/4K3 w - - 0 1", "f6", chess.Black, true},
		{"black pawn does not attack upward", "k7/8/4p3/8/8/8/8/4K3 w - - 0 1", "d7", chess.Black, false},
		{"knight", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", "c3", chess.White, true},
		{"knight on edge", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", "b3", chess.White, true},
		{"king adjacent", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", chess.White, true},
		{"bishop long diagonal", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", "h8", chess.White, true},
		{"bishop blocked", "4k3/8/8/8/3P4/8/8/B3K3 w - - 0 1", "h8", chess.White, false},
		{"rook along rank", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a8", chess.White, true},
		{"rook blocked by own piece", "4k3/8/8/8/8/8/8/R2NK3 w - - 0 1", "e1", chess.White, false},
		{"queen both ways", "4k3/8/8/3Q4/8/8/8/4K3 w - - 0 1", "h1", chess.White, true},
		{"wrong colour", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a8", chess.Black, false},
		{"no colour", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a4", chess.NoColour, false},
		{"corner square attacked by nothing", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "a8", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			sq := chess.ParseSquare(tt.square)
			if got := g.IsSquareAttacked(sq.Row, sq.Col, tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsKingInCheck(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if !g.IsKingInCheck(chess.White) {
		t.Error("IsKingInCheck(White) = false, want true")
	}
	if g.IsKingInCheck(chess.Black) {
		t.Error("IsKingInCheck(Black) = true, want false")
	}

	// A missing king is never in check.
	s := g.State()
	s.Board.Set(7, 4, chess.Empty)
	if NewGameFromState(s).IsKingInCheck(chess.White) {
		t.Error("IsKingInCheck(White) without a king = true, want false")
	}
}

func TestTrialsRestoreBoard(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"plain move", InitialFEN, "g1", "f3"},
		{"capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5"},
		{"en passant", "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1", "e5", "d6"},
		{"castling", castlingFEN, "e1", "g1"},
		{"promotion square", "8/4P3/8/8/8/8/8/k6K w - - 0 1", "e7", "e8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			before := g.State()

			g.wouldMoveResultInCheck(chess.ParseSquare(tt.from), chess.ParseSquare(tt.to), before.ToMove)
			if g.State() != before {
				t.Error("wouldMoveResultInCheck changed the state")
			}

			to := chess.ParseSquare(tt.to)
			g.wouldBeInCheck(before.ToMove, to.Row, to.Col)
			if g.State() != before {
				t.Error("wouldBeInCheck changed the state")
			}
		})
	}
}

func TestWouldBeInCheck(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")

	// With the king lifted from e1, f1 lies open on the rook's rank.
	if !g.wouldBeInCheck(chess.White, 7, 5) {
		t.Error("wouldBeInCheck(f1) = false, want true")
	}
	if g.wouldBeInCheck(chess.White, 6, 4) {
		t.Error("wouldBeInCheck(e2) = true, want false")
	}
	if g.wouldBeInCheck(chess.White, -1, 4) {
		t.Error("wouldBeInCheck off the board = true, want false")
	}
}
