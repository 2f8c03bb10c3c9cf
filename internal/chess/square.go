package chess

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Constants for square names.
const (
	FileBase = 'a'
	RankBase = '1'
)

// Position addresses a square by row and column. Row 0 is Black's back
// rank, row 7 White's; column 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// NoPosition is the sentinel for "no square": king not found, no en
// passant target, unparsable square name.
var NoPosition = Position{Row: -1, Col: -1}

// At returns the position for the given row and column.
func At(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether row and col address a square on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the position is on the board.
func (p Position) Valid() bool {
	return InBounds(p.Row, p.Col)
}

// Index returns the row-major square index 0-63, or -1 when off the board.
func (p Position) Index() int {
	if !p.Valid() {
		return -1
	}
	return p.Row*BoardSize + p.Col
}

// PositionFromIndex converts a row-major square index back to a position.
func PositionFromIndex(index int) Position {
	if index < 0 || index >= BoardSize*BoardSize {
		return NoPosition
	}
	return Position{Row: index / BoardSize, Col: index % BoardSize}
}

// String returns the square name, or "-" for positions off the board.
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return SquareName(p.Row, p.Col)
}

// SquareName returns the algebraic name of a square, e.g. "e4".
func SquareName(row, col int) string {
	return string([]byte{byte(FileBase + col), byte(RankBase + BoardSize - 1 - row)})
}

// ParseSquare converts an algebraic square name to a position. The name
// must be exactly two characters, a file a-h and a rank 1-8; anything else
// yields NoPosition.
func ParseSquare(name string) Position {
	if len(name) != 2 {
		return NoPosition
	}
	col := int(name[0]) - FileBase
	row := BoardSize - (int(name[1]) - '0')
	if !InBounds(row, col) {
		return NoPosition
	}
	return Position{Row: row, Col: col}
}
