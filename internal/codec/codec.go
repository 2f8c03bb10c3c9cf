// Package codec packs a game state into four 64-bit board words and one
// 64-bit metadata word for replication between peers, and unpacks it again.
package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// Board word layout: square s = row*8+col lives in word s/16 at bit (s%16)*4.
const (
	BoardWords     = 4
	squaresPerWord = 16
	bitsPerSquare  = 4
	nibbleMask     = 0xF
)

// Metadata word layout.
const (
	blackToMoveBit = 0

	castleWhiteKingBit  = 1
	castleWhiteQueenBit = 2
	castleBlackKingBit  = 3
	castleBlackQueenBit = 4

	enPassantShift = 5
	enPassantMask  = 0xF

	gameOverBit = 9

	winnerShift = 10
	winnerMask  = 0x3

	checkBit     = 12
	checkmateBit = 13
	stalemateBit = 14

	// usedBits covers bits 0-14; everything above is reserved.
	usedBits = 15
)

// Winner field values.
const (
	winnerNone  = 0
	winnerWhite = 1
	winnerBlack = 2
)

// PayloadSize is the length of the binary framing in bytes.
const PayloadSize = (BoardWords + 1) * 8

// Payload is the serialized form of a game state.
type Payload struct {
	Board    [BoardWords]uint64
	Metadata uint64
}

// IsUninitialized reports whether the board words are all zero. A peer that
// has never received a real position sends this, and receivers treat it as
// the standard starting position rather than an empty board.
func (p Payload) IsUninitialized() bool {
	return p.Board == [BoardWords]uint64{}
}

// Serialize encodes the state. Every state has exactly one encoding.
func Serialize(s *chess.State) Payload {
	var p Payload

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := row*chess.BoardSize + col
			code := uint64(s.Board.Get(row, col).Code())
			p.Board[sq/squaresPerWord] |= code << (uint(sq%squaresPerWord) * bitsPerSquare)
		}
	}

	var meta uint64
	if s.ToMove == chess.Black {
		meta |= 1 << blackToMoveBit
	}
	if s.Castling.White.Kingside {
		meta |= 1 << castleWhiteKingBit
	}
	if s.Castling.White.Queenside {
		meta |= 1 << castleWhiteQueenBit
	}
	if s.Castling.Black.Kingside {
		meta |= 1 << castleBlackKingBit
	}
	if s.Castling.Black.Queenside {
		meta |= 1 << castleBlackQueenBit
	}
	if s.EnPassant.Valid() {
		meta |= uint64(s.EnPassant.Col+1) << enPassantShift
	}
	if s.GameOver {
		meta |= 1 << gameOverBit
	}
	switch s.Winner {
	case chess.White:
		meta |= winnerWhite << winnerShift
	case chess.Black:
		meta |= winnerBlack << winnerShift
	}
	if s.Check {
		meta |= 1 << checkBit
	}
	if s.Checkmate {
		meta |= 1 << checkmateBit
	}
	if s.Stalemate {
		meta |= 1 << stalemateBit
	}
	p.Metadata = meta

	return p
}

// Deserialize decodes a payload without validating it. Unassigned square
// codes decode as empty and an unassigned winner value as no winner.
//
// Only the en passant file is stored. The row follows from the side to move:
// the target always sits behind a pawn that just advanced two squares, so it
// is on row 2 when White is to move and row 5 when Black is.
func Deserialize(p Payload) chess.State {
	var s chess.State

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := row*chess.BoardSize + col
			code := (p.Board[sq/squaresPerWord] >> (uint(sq%squaresPerWord) * bitsPerSquare)) & nibbleMask
			s.Board.Set(row, col, chess.PieceFromCode(uint8(code)))
		}
	}

	meta := p.Metadata
	s.ToMove = chess.White
	if bit(meta, blackToMoveBit) {
		s.ToMove = chess.Black
	}

	s.Castling.White.Kingside = bit(meta, castleWhiteKingBit)
	s.Castling.White.Queenside = bit(meta, castleWhiteQueenBit)
	s.Castling.Black.Kingside = bit(meta, castleBlackKingBit)
	s.Castling.Black.Queenside = bit(meta, castleBlackQueenBit)

	s.EnPassant = chess.NoPosition
	if file := int((meta >> enPassantShift) & enPassantMask); file > 0 && file <= chess.BoardSize {
		s.EnPassant = chess.Position{Row: EnPassantRow(s.ToMove), Col: file - 1}
	}

	s.GameOver = bit(meta, gameOverBit)
	switch (meta >> winnerShift) & winnerMask {
	case winnerWhite:
		s.Winner = chess.White
	case winnerBlack:
		s.Winner = chess.Black
	default:
		s.Winner = chess.NoColour
	}
	s.Check = bit(meta, checkBit)
	s.Checkmate = bit(meta, checkmateBit)
	s.Stalemate = bit(meta, stalemateBit)

	return s
}

// EnPassantRow returns the row of an en passant target when the given side
// is to move.
func EnPassantRow(toMove chess.Colour) int {
	if toMove == chess.White {
		return 2
	}
	return 5
}

// Validate applies the strict checks used on peer ingress. Deserialize
// accepts anything; Validate rejects payloads no engine could have produced
// at the bit level.
func Validate(p Payload) error {
	for sq := 0; sq < chess.BoardSize*chess.BoardSize; sq++ {
		code := (p.Board[sq/squaresPerWord] >> (uint(sq%squaresPerWord) * bitsPerSquare)) & nibbleMask
		if code >= chess.NumPieceValues {
			return errors.Wrapf(errors.ErrCorruptPayload, "square %s holds unassigned code %d",
				chess.PositionFromIndex(sq), code)
		}
	}

	if reserved := p.Metadata >> usedBits; reserved != 0 {
		return errors.Wrapf(errors.ErrCorruptPayload, "reserved metadata bits set (%#x)", reserved<<usedBits)
	}
	if file := (p.Metadata >> enPassantShift) & enPassantMask; file > chess.BoardSize {
		return errors.Wrapf(errors.ErrCorruptPayload, "en passant file %d out of range", file)
	}
	if winner := (p.Metadata >> winnerShift) & winnerMask; winner > winnerBlack {
		return errors.Wrap(errors.ErrCorruptPayload, "winner field holds unassigned value 3")
	}
	return nil
}

// MarshalBinary encodes the payload as 40 little-endian bytes, board words
// first.
func (p Payload) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PayloadSize)
	for i, w := range p.Board {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	binary.LittleEndian.PutUint64(buf[BoardWords*8:], p.Metadata)
	return buf, nil
}

// UnmarshalBinary decodes the framing written by MarshalBinary.
func (p *Payload) UnmarshalBinary(data []byte) error {
	if len(data) != PayloadSize {
		return errors.Wrapf(errors.ErrCorruptPayload, "payload is %d bytes, want %d", len(data), PayloadSize)
	}
	for i := range p.Board {
		p.Board[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	p.Metadata = binary.LittleEndian.Uint64(data[BoardWords*8:])
	return nil
}

// String renders the five words as 16-digit hex separated by colons.
func (p Payload) String() string {
	parts := make([]string, 0, BoardWords+1)
	for _, w := range p.Board {
		parts = append(parts, fmt.Sprintf("%016x", w))
	}
	parts = append(parts, fmt.Sprintf("%016x", p.Metadata))
	return strings.Join(parts, ":")
}

// ParsePayload parses the text form produced by String.
func ParsePayload(text string) (Payload, error) {
	var p Payload

	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != BoardWords+1 {
		return p, errors.Wrapf(errors.ErrCorruptPayload, "expected %d words, got %d", BoardWords+1, len(parts))
	}

	words := make([]uint64, 0, len(parts))
	for i, part := range parts {
		w, err := strconv.ParseUint(part, 16, 64)
		if err != nil {
			return Payload{}, errors.Wrapf(errors.ErrCorruptPayload, "word %d: %v", i, err)
		}
		words = append(words, w)
	}

	copy(p.Board[:], words[:BoardWords])
	p.Metadata = words[BoardWords]
	return p, nil
}

func bit(word uint64, n uint) bool {
	return word&(1<<n) != 0
}
