package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-replica-go/internal/errors"
)

func TestSerialize_InitialPosition(t *testing.T) {
	s := chess.NewInitialState()
	p := Serialize(&s)

	// Row 0 is the black back rank: r n b q k b n r = 10 8 9 11 12 9 8 10,
	// followed by eight black pawns (7), packed low nibble first.
	want := Payload{
		Board: [4]uint64{
			0x77777777a89cb98a,
			0,
			0,
			0x4236532411111111,
		},
		Metadata: 0x1e,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Serialize(initial) mismatch (-want +got):\n%s", diff)
	}
	if p.IsUninitialized() {
		t.Error("initial position reported as uninitialized")
	}
}

func TestSerialize_Metadata(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*chess.State)
		want   uint64
	}{
		{"black to move", func(s *chess.State) { s.ToMove = chess.Black }, 1 << 0},
		{"white kingside", func(s *chess.State) { s.Castling.White.Kingside = true }, 1 << 1},
		{"white queenside", func(s *chess.State) { s.Castling.White.Queenside = true }, 1 << 2},
		{"black kingside", func(s *chess.State) { s.Castling.Black.Kingside = true }, 1 << 3},
		{"black queenside", func(s *chess.State) { s.Castling.Black.Queenside = true }, 1 << 4},
		{"en passant on a-file", func(s *chess.State) { s.EnPassant = chess.At(2, 0) }, 1 << 5},
		{"en passant on h-file", func(s *chess.State) { s.EnPassant = chess.At(2, 7) }, 8 << 5},
		{"game over", func(s *chess.State) { s.GameOver = true }, 1 << 9},
		{"white wins", func(s *chess.State) { s.Winner = chess.White }, 1 << 10},
		{"black wins", func(s *chess.State) { s.Winner = chess.Black }, 2 << 10},
		{"check", func(s *chess.State) { s.Check = true }, 1 << 12},
		{"checkmate", func(s *chess.State) { s.Checkmate = true }, 1 << 13},
		{"stalemate", func(s *chess.State) { s.Stalemate = true }, 1 << 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyState()
			tt.modify(&s)
			if got := Serialize(&s).Metadata; got != tt.want {
				t.Errorf("Metadata = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestSerialize_SquarePacking(t *testing.T) {
	s := emptyState()
	s.Board.Set(0, 0, chess.WhitePawn)  // square 0: word 0, bits 0-3
	s.Board.Set(1, 7, chess.BlackKing)  // square 15: word 0, bits 60-63
	s.Board.Set(2, 0, chess.WhiteQueen) // square 16: word 1, bits 0-3
	s.Board.Set(7, 7, chess.BlackRook)  // square 63: word 3, bits 60-63

	p := Serialize(&s)
	want := [4]uint64{0xc000000000000001, 0x5, 0, 0xa000000000000000}
	if p.Board != want {
		t.Errorf("Board = %#x, want %#x", p.Board, want)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state chess.State
	}{
		{"initial", chess.NewInitialState()},
		{"white to move with target", func() chess.State {
			s := chess.NewInitialState()
			s.Board.Set(1, 3, chess.Empty)
			s.Board.Set(3, 3, chess.BlackPawn)
			s.EnPassant = chess.At(2, 3)
			return s
		}()},
		{"black to move with target", func() chess.State {
			s := chess.NewInitialState()
			s.ToMove = chess.Black
			s.Board.Set(6, 4, chess.Empty)
			s.Board.Set(4, 4, chess.WhitePawn)
			s.EnPassant = chess.At(5, 4)
			return s
		}()},
		{"mate flags", func() chess.State {
			s := chess.NewInitialState()
			s.Check, s.Checkmate, s.GameOver = true, true, true
			s.Winner = chess.Black
			s.Castling = chess.Castling{Black: chess.CastlingRights{Queenside: true}}
			return s
		}()},
		{"stalemate flags", func() chess.State {
			s := emptyState()
			s.Board.Set(0, 7, chess.BlackKing)
			s.Board.Set(1, 5, chess.WhiteQueen)
			s.Board.Set(2, 6, chess.WhiteKing)
			s.ToMove = chess.Black
			s.Stalemate, s.GameOver = true, true
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deserialize(Serialize(&tt.state))
			if diff := cmp.Diff(tt.state, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeserialize_Lenient(t *testing.T) {
	p := Payload{
		Board:    [4]uint64{0xf, 0, 0, 0},
		Metadata: 3 << winnerShift,
	}
	s := Deserialize(p)

	if got := s.Board.Get(0, 0); got != chess.Empty {
		t.Errorf("unassigned code decoded as %v, want empty", got)
	}
	if s.Winner != chess.NoColour {
		t.Errorf("Winner = %v, want none", s.Winner)
	}
	if s.EnPassant != chess.NoPosition {
		t.Errorf("EnPassant = %v, want none", s.EnPassant)
	}
}

func TestDeserialize_EnPassantRow(t *testing.T) {
	tests := []struct {
		name string
		meta uint64
		want chess.Position
	}{
		{"white to move", 5 << enPassantShift, chess.ParseSquare("e6")},
		{"black to move", 1 | 5<<enPassantShift, chess.ParseSquare("e3")},
		{"no target", 0, chess.NoPosition},
		{"file out of range", 9 << enPassantShift, chess.NoPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Deserialize(Payload{Board: [4]uint64{1}, Metadata: tt.meta})
			if s.EnPassant != tt.want {
				t.Errorf("EnPassant = %v, want %v", s.EnPassant, tt.want)
			}
		})
	}
}

func TestIsUninitialized(t *testing.T) {
	if !(Payload{}).IsUninitialized() {
		t.Error("zero payload should be uninitialized")
	}
	if !(Payload{Metadata: 0x1e}).IsUninitialized() {
		t.Error("metadata alone should not count as a board")
	}
	if (Payload{Board: [4]uint64{0, 0, 1, 0}}).IsUninitialized() {
		t.Error("payload with a piece reported as uninitialized")
	}
}

func TestValidate(t *testing.T) {
	s := chess.NewInitialState()
	good := Serialize(&s)

	tests := []struct {
		name    string
		payload Payload
		wantErr bool
	}{
		{"engine payload", good, false},
		{"zero payload", Payload{}, false},
		{"unassigned square code", Payload{Board: [4]uint64{0, 0, 0xd0, 0}}, true},
		{"code 15 in top nibble", Payload{Board: [4]uint64{0, 0, 0, 0xf000000000000000}}, true},
		{"winner field 3", Payload{Metadata: 3 << winnerShift}, true},
		{"reserved bit", Payload{Metadata: 1 << 15}, true},
		{"high reserved bit", Payload{Metadata: 1 << 63}, true},
		{"en passant file 9", Payload{Metadata: 9 << enPassantShift}, true},
		{"en passant file 8", Payload{Metadata: 8 << enPassantShift}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrCorruptPayload) {
				t.Errorf("Validate() error = %v, want ErrCorruptPayload", err)
			}
		})
	}
}

func TestBinaryFraming(t *testing.T) {
	s := chess.NewInitialState()
	s.ToMove = chess.Black
	s.EnPassant = chess.At(5, 4)
	want := Serialize(&s)

	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != PayloadSize {
		t.Fatalf("len(data) = %d, want %d", len(data), PayloadSize)
	}
	// Little-endian: the first byte is the low byte of board word 0.
	if data[0] != 0x8a {
		t.Errorf("data[0] = %#x, want 0x8a", data[0])
	}

	var got Payload
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if got != want {
		t.Errorf("UnmarshalBinary() = %v, want %v", got, want)
	}

	for _, n := range []int{0, 39, 41} {
		if err := got.UnmarshalBinary(make([]byte, n)); !errors.Is(err, chesserrors.ErrCorruptPayload) {
			t.Errorf("UnmarshalBinary(%d bytes) error = %v, want ErrCorruptPayload", n, err)
		}
	}
}

func TestTextFraming(t *testing.T) {
	s := chess.NewInitialState()
	p := Serialize(&s)

	text := p.String()
	want := "77777777a89cb98a:0000000000000000:0000000000000000:4236532411111111:000000000000001e"
	if text != want {
		t.Errorf("String() = %q, want %q", text, want)
	}

	got, err := ParsePayload(text)
	if err != nil {
		t.Fatalf("ParsePayload() error = %v", err)
	}
	if got != p {
		t.Errorf("ParsePayload() = %v, want %v", got, p)
	}

	for _, bad := range []string{"", "1:2:3:4", "1:2:3:4:5:6", "zz:0:0:0:0", "1:2:3:4:10000000000000000"} {
		if _, err := ParsePayload(bad); !errors.Is(err, chesserrors.ErrCorruptPayload) {
			t.Errorf("ParsePayload(%q) error = %v, want ErrCorruptPayload", bad, err)
		}
	}
}

func emptyState() chess.State {
	return chess.State{
		ToMove:    chess.White,
		EnPassant: chess.NoPosition,
		Winner:    chess.NoColour,
	}
}
