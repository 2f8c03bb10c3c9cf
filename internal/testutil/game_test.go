package testutil

import (
	"testing"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/engine"
)

func TestMustGame(t *testing.T) {
	g := MustGame(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	AssertEqual(t, g.CurrentPlayer(), chess.Black)
	AssertEqual(t, g.PieceAt("e1"), chess.WhiteKing)
}

func TestMustPlay(t *testing.T) {
	g := engine.NewGame()
	MustPlay(t, g, "e2e4", "e7e5", "g1f3")

	AssertEqual(t, g.Ply(), 3)
	AssertEqual(t, g.CurrentPlayer(), chess.Black)
	AssertEqual(t, g.PieceAt("f3"), chess.WhiteKnight)
}

func TestPayloadAfter(t *testing.T) {
	p := PayloadAfter(t, "e2e4")
	s := codec.Deserialize(p)

	AssertEqual(t, s.ToMove, chess.Black)
	AssertEqual(t, s.EnPassant, chess.ParseSquare("e3"))
	AssertFalse(t, p.IsUninitialized())
}
