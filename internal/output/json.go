package output

import (
	"fmt"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/engine"
)

// JSONState represents a game position in JSON format.
type JSONState struct {
	Payload   string   `json:"payload"` // codec text form
	Board     []string `json:"board"`   // the four board words in hex
	Metadata  string   `json:"metadata"`
	FEN       string   `json:"fen"`
	ToMove    string   `json:"toMove"`
	Status    string   `json:"status"`
	Winner    string   `json:"winner,omitempty"`
	GameOver  bool     `json:"gameOver"`
	Castling  string   `json:"castling"`
	EnPassant string   `json:"enPassant,omitempty"`
	Ply       int      `json:"ply"`
	Movable   []string `json:"movable"`
}

// JSONOutcome represents the result of a move request.
type JSONOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSONPerft is one perft report.
type JSONPerft struct {
	FEN        string         `json:"fen"`
	Depth      int            `json:"depth"`
	Nodes      uint64         `json:"nodes"`
	Divide     []JSONDivide   `json:"divide,omitempty"`
	Mismatches []JSONMismatch `json:"mismatches,omitempty"`
	Millis     int64          `json:"millis"`
}

// JSONDivide is the count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONMismatch is a root move where the engine and reference disagree.
type JSONMismatch struct {
	Move      string `json:"move"`
	Engine    uint64 `json:"engine"`
	Reference uint64 `json:"reference"`
}

// JSONPerftOutput holds multiple reports for array output.
type JSONPerftOutput struct {
	Reports []*JSONPerft `json:"reports"`
}

// StateToJSON converts a game to JSON format.
func StateToJSON(g *engine.Game) *JSONState {
	s := g.State()
	p := g.SerializePosition()

	js := &JSONState{
		Payload:  p.String(),
		Board:    make([]string, 0, codec.BoardWords),
		Metadata: fmt.Sprintf("%016x", p.Metadata),
		FEN:      g.FEN(),
		ToMove:   s.ToMove.String(),
		Status:   g.GameStatus().String(),
		GameOver: s.GameOver,
		Castling: CastlingString(s.Castling),
		Ply:      g.Ply(),
		Movable:  squareNames(g.MovablePieces(s.ToMove)),
	}
	for _, w := range p.Board {
		js.Board = append(js.Board, fmt.Sprintf("%016x", w))
	}
	if s.Winner != chess.NoColour {
		js.Winner = s.Winner.String()
	}
	if s.EnPassant.Valid() {
		js.EnPassant = s.EnPassant.String()
	}
	return js
}

// OutcomeToJSON converts a move outcome to JSON format.
func OutcomeToJSON(out engine.MoveOutcome) JSONOutcome {
	jo := JSONOutcome{Success: out.Success, Message: out.Message}
	if out.Err != nil {
		jo.Error = out.Err.Error()
	}
	return jo
}

// ReportToJSON converts a perft report to JSON format.
func ReportToJSON(r *Report) *JSONPerft {
	jp := &JSONPerft{
		FEN:    r.FEN,
		Depth:  r.Depth,
		Nodes:  r.Nodes,
		Millis: r.Elapsed.Milliseconds(),
	}
	for _, e := range r.Entries {
		jp.Divide = append(jp.Divide, JSONDivide{Move: e.Move, Nodes: e.Nodes})
	}
	for _, m := range r.Mismatches {
		jp.Mismatches = append(jp.Mismatches, JSONMismatch(m))
	}
	return jp
}

// SquareNames returns the names of positions in order.
func SquareNames(ps []chess.Position) []string {
	return squareNames(ps)
}

func squareNames(ps []chess.Position) []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.String())
	}
	return names
}
