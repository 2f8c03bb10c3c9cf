// Package output formats positions and perft reports as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/perft"
)

// CastlingString returns the rights in FEN form, "-" when none remain.
func CastlingString(c chess.Castling) string {
	var sb strings.Builder
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
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// WriteDivide writes one "move: nodes" line per entry.
func WriteDivide(w io.Writer, entries []perft.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
	}
	return nil
}

// WriteMismatches lists root moves where the engine and the reference
// generator disagree.
func WriteMismatches(w io.Writer, ms []perft.Mismatch) error {
	for _, m := range ms {
		if _, err := fmt.Fprintf(w, "MISMATCH %s: engine %d, reference %d\n", m.Move, m.Engine, m.Reference); err != nil {
			return err
		}
	}
	return nil
}

// NodesPerSecond formats a search rate. Zero durations report no rate.
func NodesPerSecond(nodes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", float64(nodes)/elapsed.Seconds())
}
