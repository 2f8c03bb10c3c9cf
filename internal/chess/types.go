// Package chess provides core chess types and the board store.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NoColour // no player; used for "no winner"
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// PawnDirection returns the row step of a pawn advance: -1 for White, +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// BackRank returns the row holding the colour's pieces at the start of a game.
func BackRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the value held by a square. Its numeric value is the 4-bit wire
// code: 0 is empty, 1-6 are the white pieces and 7-12 the black pieces, each
// in pawn, knight, bishop, rook, queen, king order.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NumPieceValues is the number of distinct square values, including Empty.
const NumPieceValues = 13

// blackOffset is the distance between a white piece code and its black twin.
const blackOffset = 6

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind <= NoKind || kind > King {
		return Empty
	}
	switch colour {
	case White:
		return Piece(kind)
	case Black:
		return Piece(int(kind) + blackOffset)
	default:
		return Empty
	}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// PieceFromCode maps a 4-bit wire code to a piece. Codes 13-15 are not
// assigned and map to Empty.
func PieceFromCode(code uint8) Piece {
	if code >= NumPieceValues {
		return Empty
	}
	return Piece(code)
}

// Code returns the 4-bit wire code of the piece.
func (p Piece) Code() uint8 {
	return uint8(p)
}

// IsEmpty reports whether the square value holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Colour extracts the colour of a piece, NoColour for Empty.
func (p Piece) Colour() Colour {
	switch {
	case p >= WhitePawn && p <= WhiteKing:
		return White
	case p >= BlackPawn && p <= BlackKing:
		return Black
	default:
		return NoColour
	}
}

// Kind extracts the piece type.
func (p Piece) Kind() Kind {
	switch {
	case p >= WhitePawn && p <= WhiteKing:
		return Kind(p)
	case p >= BlackPawn && p <= BlackKing:
		return Kind(int(p) - blackOffset)
	default:
		return NoKind
	}
}

// IsOwnedBy reports whether the piece belongs to the given colour.
func (p Piece) IsOwnedBy(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Symbol returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and '.' for Empty.
func (p Piece) Symbol() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "white knight".
func (p Piece) String() string {
	if p == Empty {
		return "empty"
	}
	colour := "white"
	if p.Colour() == Black {
		colour = "black"
	}
	switch p.Kind() {
	case Pawn:
		return colour + " pawn"
	case Knight:
		return colour + " knight"
	case Bishop:
		return colour + " bishop"
	case Rook:
		return colour + " rook"
	case Queen:
		return colour + " queen"
	case King:
		return colour + " king"
	}
	return "unknown"
}

// PieceFromSymbol converts a FEN letter to a piece, Empty if unknown.
func PieceFromSymbol(c byte) Piece {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty
	}
	return MakePiece(colour, kind)
}

// PromotionChoice selects the piece a pawn becomes on the last rank.
// The zero value is a queen.
type PromotionChoice int

const (
	PromoteQueen PromotionChoice = iota
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// Valid reports whether the choice is one of the four allowed pieces.
func (p PromotionChoice) Valid() bool {
	return p >= PromoteQueen && p <= PromoteKnight
}

// Kind returns the piece type the choice promotes to.
func (p PromotionChoice) Kind() Kind {
	switch p {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return NoKind
	}
}

// String returns the lowercase long-algebraic suffix ("q", "r", "b", "n").
func (p PromotionChoice) String() string {
	switch p {
	case PromoteQueen:
		return "q"
	case PromoteRook:
		return "r"
	case PromoteBishop:
		return "b"
	case PromoteKnight:
		return "n"
	default:
		return "?"
	}
}

// ParsePromotion parses a promotion letter. The empty string means queen.
// The second result is false for anything else.
func ParsePromotion(s string) (PromotionChoice, bool) {
	switch s {
	case "", "q", "Q":
		return PromoteQueen, true
	case "r", "R":
		return PromoteRook, true
	case "b", "B":
		return PromoteBishop, true
	case "n", "N":
		return PromoteKnight, true
	default:
		return PromoteQueen, false
	}
}
