package testutil

import (
	"testing"

	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/engine"
)

// MustGame builds a game from FEN, failing the test on a bad position.
func MustGame(t testing.TB, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// MustPlay applies coordinate moves such as "e2e4" or "e7e8n" in order and
// fails the test at the first one the engine rejects.
func MustPlay(t testing.TB, g *engine.Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := engine.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if out := g.Play(m); !out.Success {
			t.Fatalf("move %s rejected: %s", s, out.Message)
		}
	}
}

// PayloadAfter returns the encoded position reached by playing moves from
// the start position.
func PayloadAfter(t testing.TB, moves ...string) codec.Payload {
	t.Helper()
	g := engine.NewGame()
	MustPlay(t, g, moves...)
	return g.SerializePosition()
}
