package session

import (
	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/engine"
)

// CommandKind identifies what a Command does to the session's game.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdReset
	CmdLoad
	CmdView
)

func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdReset:
		return "reset"
	case CmdLoad:
		return "load"
	case CmdView:
		return "view"
	default:
		return "unknown"
	}
}

// Command is one request for the session loop.
type Command struct {
	Kind      CommandKind
	From, To  string
	Promotion chess.PromotionChoice
	Payload   codec.Payload

	// View runs on the loop goroutine with exclusive access to the game.
	// For commands other than CmdView it runs after the command, in the
	// same turn, whether or not the command succeeded. It must not keep
	// the pointer.
	View func(g *engine.Game)
}

// MoveCommand requests a move given as two square names.
func MoveCommand(from, to string, promotion chess.PromotionChoice) Command {
	return Command{Kind: CmdMove, From: from, To: to, Promotion: promotion}
}

// ResetCommand restores the standard starting position.
func ResetCommand() Command {
	return Command{Kind: CmdReset}
}

// LoadCommand replaces the position with a validated payload.
func LoadCommand(p codec.Payload) Command {
	return Command{Kind: CmdLoad, Payload: p}
}

// ViewCommand reads the game without changing it.
func ViewCommand(fn func(g *engine.Game)) Command {
	return Command{Kind: CmdView, View: fn}
}

// WithView returns a copy of c that runs fn on the game once c has been
// handled, before any other command.
func (c Command) WithView(fn func(g *engine.Game)) Command {
	c.View = fn
	return c
}

// Snapshot is the position published after every change.
type Snapshot struct {
	SessionID string
	Seq       uint64
	Payload   codec.Payload
	Outcome   engine.MoveOutcome
}

// Result is the reply to a submitted command. Err is set when the command
// was rejected; for moves it is the same error as Outcome.Err. Snapshot is
// zero unless the command changed the game. Seq is the number of updates
// the session has published once the command completed.
type Result struct {
	Outcome  engine.MoveOutcome
	Snapshot Snapshot
	Seq      uint64
	Err      error
}

// Changed reports whether the command produced a new snapshot.
func (r Result) Changed() bool {
	return r.Snapshot.Seq != 0
}
