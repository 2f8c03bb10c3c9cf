package chess

// Board is the 8x8 grid of square values, indexed [row][col].
// Accessors are bounds-checked: reads off the board see Empty and writes
// off the board are dropped.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := &Board{}
	b.SetupInitialPosition()
	return b
}

// backRank is the piece order on both back ranks, a-file first.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece at the given square, Empty when off the board.
func (b *Board) Get(row, col int) Piece {
	if !InBounds(row, col) {
		return Empty
	}
	return b.Squares[row][col]
}

// Set places a piece at the given square. Off-board writes are ignored.
func (b *Board) Set(row, col int, piece Piece) {
	if !InBounds(row, col) {
		return
	}
	b.Squares[row][col] = piece
}

// At returns the piece at a position.
func (b *Board) At(p Position) Piece {
	return b.Get(p.Row, p.Col)
}

// Put places a piece at a position.
func (b *Board) Put(p Position, piece Piece) {
	b.Set(p.Row, p.Col, piece)
}

// IsPathClear reports whether every square strictly between the two
// endpoints is empty. The walk steps by -1, 0 or +1 on each axis, so it is
// only meaningful for straight or diagonal lines; any step that leaves the
// board makes the path not clear.
func (b *Board) IsPathClear(fromRow, fromCol, toRow, toCol int) bool {
	rowStep := sign(toRow - fromRow)
	colStep := sign(toCol - fromCol)

	row := fromRow + rowStep
	col := fromCol + colStep
	for row != toRow || col != toCol {
		if !InBounds(row, col) || b.Squares[row][col] != Empty {
			return false
		}
		row += rowStep
		col += colStep
	}
	return true
}

// FindKing returns the square of the given colour's king, or NoPosition.
func (b *Board) FindKing(colour Colour) Position {
	king := MakePiece(colour, King)
	if king == Empty {
		return NoPosition
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Position{Row: row, Col: col}
			}
		}
	}
	return NoPosition
}

// Count returns how many squares hold the given piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
