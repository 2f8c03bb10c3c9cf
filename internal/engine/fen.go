package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. The halfmove and
// fullmove fields are accepted but ignored. The status flags are computed
// for the loaded position.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	s := chess.State{
		ToMove:    chess.White,
		EnPassant: chess.NoPosition,
		Winner:    chess.NoColour,
	}

	if err := parsePiecePositions(&s.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(&s, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(&s, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(&s, parts); err != nil {
		return nil, err
	}

	g := NewGameFromState(s)
	g.updateStatus()
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := chess.PieceFromSymbol(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			board.Set(row, col, piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakePiece(colour, chess.King)); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s *chess.State, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		s.ToMove = chess.White
	case "b":
		s.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(s *chess.State, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			s.Castling.White.Kingside = true
		case 'Q':
			s.Castling.White.Queenside = true
		case 'k':
			s.Castling.Black.Kingside = true
		case 'q':
			s.Castling.Black.Queenside = true
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must be on the rank behind a pawn that just advanced two squares, which
// is the only rank the codec can represent.
func parseEnPassant(s *chess.State, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target := chess.ParseSquare(parts[3])
	if !target.Valid() {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	if target.Row != codec.EnPassantRow(s.ToMove) {
		return fmt.Errorf("en passant square %s on wrong rank for %v to move: %w", parts[3], s.ToMove, errors.ErrInvalidFEN)
	}
	s.EnPassant = target
	return nil
}

// FEN returns the position as a FEN string. Clocks are not tracked, so the
// last two fields are always "0 1".
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.state.Board)
	sb.WriteByte(' ')
	if g.state.ToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, g.state.Castling)
	sb.WriteByte(' ')
	sb.WriteString(g.state.EnPassant.String())
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(row, col)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, c chess.Castling) {
	start := sb.Len()
	if c.White.Kingside {
		sb.WriteByte('K')
	}
	if c.White.Queenside {
		sb.WriteByte('Q')
	}
	if c.Black.Kingside {
		sb.WriteByte('k')
	}
	if c.Black.Queenside {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}
