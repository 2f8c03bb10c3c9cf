// Package engine implements the chess rules: move legality, attack
// detection, check/checkmate/stalemate and the move enumerator.
//
// A Game is not safe for concurrent use. The trial moves used for king
// safety mutate the board and restore it before returning, so callers that
// share a Game across goroutines must serialize access themselves.
package engine

import (
	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
)

// Game owns the state of a single game.
type Game struct {
	state chess.State
	ply   int
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	g := &Game{}
	g.Initialize()
	return g
}

// NewGameFromState creates a game that takes ownership of a copy of s.
// The derived status flags are taken as given.
func NewGameFromState(s chess.State) *Game {
	return &Game{state: s}
}

// Initialize resets the game to the standard starting position with all
// castling rights, no en passant target and White to move.
func (g *Game) Initialize() {
	g.state = chess.NewInitialState()
	g.ply = 0
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// State returns a copy of the full game state.
func (g *Game) State() chess.State {
	return g.state
}

// Board returns a copy of the board.
func (g *Game) Board() chess.Board {
	return g.state.Board
}

// PieceAt returns the piece on the named square, Empty for invalid names.
func (g *Game) PieceAt(square string) chess.Piece {
	return g.state.Board.At(chess.ParseSquare(square))
}

// Ply returns the number of moves applied since the game was initialized
// or loaded.
func (g *Game) Ply() int {
	return g.ply
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() chess.Colour {
	return g.state.ToMove
}

// Winner returns the side that delivered checkmate, or NoColour.
func (g *Game) Winner() chess.Colour {
	return g.state.Winner
}

// IsGameOver reports whether the game ended by checkmate or stalemate.
func (g *Game) IsGameOver() bool {
	return g.state.GameOver
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return g.state.Check
}

// IsCheckmate reports whether the side to move has been checkmated.
func (g *Game) IsCheckmate() bool {
	return g.state.Checkmate
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return g.state.Stalemate
}

// EnPassantTarget returns the current en passant target, or NoPosition.
func (g *Game) EnPassantTarget() chess.Position {
	return g.state.EnPassant
}

// CastlingRights returns the remaining castling rights of a colour.
func (g *Game) CastlingRights(colour chess.Colour) chess.CastlingRights {
	return g.state.Castling.For(colour)
}

// SerializePosition encodes the current state for transport.
func (g *Game) SerializePosition() codec.Payload {
	return codec.Serialize(&g.state)
}

// DeserializePosition replaces the whole state with the decoded payload.
// An uninitialized payload resets to the starting position. The move is not
// replayed and the status flags are taken from the payload as sent.
func (g *Game) DeserializePosition(p codec.Payload) {
	if p.IsUninitialized() {
		g.Initialize()
		return
	}
	g.state = codec.Deserialize(p)
	g.ply = 0
}
