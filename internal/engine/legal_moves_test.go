package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-replica-go/internal/chess"
)

func squareNames(ps []chess.Position) []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return names
}

func TestValidMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{"pawn on start rank", InitialFEN, "e2", []string{"e3", "e4"}},
		{"knight from start", InitialFEN, "g1", []string{"f3", "h3"}},
		{"boxed-in king", InitialFEN, "e1", []string{}},
		{"piece of side not to move", InitialFEN, "e7", []string{}},
		{"empty square", InitialFEN, "e4", []string{}},
		{"off the board", InitialFEN, "", []string{}},
		{"king with both castlings", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1",
			[]string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"}},
		{"rook stops at first occupant", "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1", "a1",
			[]string{"a2", "a3", "a4", "b1", "c1", "d1"}},
		{"pinned knight cannot move", "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1", "e2", []string{}},
		{"pinned bishop slides along the pin", "7k/8/8/8/3q4/8/5B2/6K1 w - - 0 1", "f2",
			[]string{"d4", "e3"}},
		{"only moves that answer check", "4k3/8/8/8/8/8/4r3/R3K3 w Q - 0 1", "a1",
			[]string{}},
		{"en passant destination", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", "e5",
			[]string{"e6", "f6"}},
		{"promotion square", "8/4P3/8/8/8/8/8/k6K w - - 0 1", "e7", []string{"e8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			sq := chess.ParseSquare(tt.square)
			got := squareNames(g.ValidMoves(sq.Row, sq.Col))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ValidMoves(%s) mismatch (-want +got):\n%s", tt.square, diff)
			}
		})
	}
}

func TestMovablePieces(t *testing.T) {
	g := NewGame()

	want := []string{"a2", "b1", "b2", "c2", "d2", "e2", "f2", "g1", "g2", "h2"}
	if diff := cmp.Diff(want, squareNames(g.MovablePieces(chess.White))); diff != "" {
		t.Errorf("MovablePieces(White) mismatch (-want +got):\n%s", diff)
	}

	// Evaluated for the given colour, whoever is to move.
	if got := len(g.MovablePieces(chess.Black)); got != 10 {
		t.Errorf("len(MovablePieces(Black)) = %d, want 10", got)
	}

	// Row-major order: black's back rank comes first.
	black := g.MovablePieces(chess.Black)
	if black[0] != chess.ParseSquare("b8") {
		t.Errorf("first black movable piece = %v, want b8", black[0])
	}
}

func TestHasValidMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"start position", InitialFEN, chess.White, true},
		{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, false},
		{"stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false},
		{"lone king", "7k/8/8/8/8/8/8/K7 w - - 0 1", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			if got := g.HasValidMoves(tt.colour); got != tt.want {
				t.Errorf("HasValidMoves(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"start position", InitialFEN, 20},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"promotion expands", "8/4P3/8/8/8/8/8/k6K w - - 0 1", 7},
		{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", 0},
		{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
		{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			if got := len(g.LegalMoves()); got != tt.want {
				t.Errorf("len(LegalMoves()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLegalMoves_PromotionStrings(t *testing.T) {
	g := mustGame(t, "8/4P3/8/8/8/8/8/k6K w - - 0 1")

	var got []string
	for _, m := range g.LegalMoves() {
		if m.From == chess.ParseSquare("e7") {
			got = append(got, m.String())
		}
	}
	want := []string{"e7e8q", "e7e8r", "e7e8b", "e7e8n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("promotion moves mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"e2e4", "e2e4", false},
		{"e7e8q", "e7e8q", false},
		{"a2a1N", "a2a1n", false},
		{"e2", "", true},
		{"e2e9", "", true},
		{"e7e8k", "", true},
		{"e7e8qq", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMove(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && m.String() != tt.want {
				t.Errorf("ParseMove(%q).String() = %q, want %q", tt.in, m.String(), tt.want)
			}
		})
	}
}
