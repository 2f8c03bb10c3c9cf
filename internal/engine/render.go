package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-replica-go/internal/chess"
)

// Render draws the board as text with White at the bottom, followed by the
// side to move and any check, mate or stalemate status.
func (g *Game) Render() string {
	var sb strings.Builder

	sb.WriteString("  +-----------------+\n")
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d |", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(g.state.Board.Get(row, col).Symbol())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")

	switch {
	case g.state.Checkmate:
		fmt.Fprintf(&sb, "Checkmate, %s wins\n", g.state.Winner)
	case g.state.Stalemate:
		sb.WriteString("Stalemate\n")
	default:
		fmt.Fprintf(&sb, "%s to move", g.state.ToMove)
		if g.state.Check {
			sb.WriteString(", in check")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
