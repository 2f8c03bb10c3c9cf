package session

import (
	"context"
	"sync"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/config"
	"github.com/lgbarn/chess-replica-go/internal/engine"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// Replica is a peer's read-only copy of a session's game, rebuilt from
// snapshots. It never applies moves itself.
type Replica struct {
	mu        sync.RWMutex
	game      *engine.Game
	sessionID string
	seq       uint64
	log       *config.Logger
}

// NewReplica returns a replica on the standard starting position.
func NewReplica(log *config.Logger) *Replica {
	return &Replica{game: engine.NewGame(), log: log}
}

// Apply installs a snapshot. Payloads that fail codec.Validate are
// rejected with ErrCorruptPayload. Snapshots not newer than the last one
// applied are ignored and reported as false.
func (r *Replica) Apply(snap Snapshot) (bool, error) {
	if err := codec.Validate(snap.Payload); err != nil {
		return false, errors.Wrapf(err, "snapshot %d", snap.Seq)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessionID == snap.SessionID && snap.Seq <= r.seq {
		r.log.Printf(config.Commentary, "replica: ignored stale update %d (have %d)", snap.Seq, r.seq)
		return false, nil
	}
	r.game.DeserializePosition(snap.Payload)
	r.sessionID = snap.SessionID
	r.seq = snap.Seq
	return true, nil
}

// Follow applies snapshots from ch until it is closed or ctx ends.
// Corrupt snapshots are logged and skipped.
func (r *Replica) Follow(ctx context.Context, ch <-chan Snapshot) error {
	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := r.Apply(snap); err != nil {
				r.log.Printf(config.Lifecycle, "replica: %v", err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Seq returns the sequence number of the last applied snapshot.
func (r *Replica) Seq() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seq
}

// State returns a copy of the replicated state.
func (r *Replica) State() chess.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game.State()
}

// Payload returns the replicated position in wire form.
func (r *Replica) Payload() codec.Payload {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game.SerializePosition()
}

// ValidMoves lists the destinations of the piece on a square, as the
// authoritative game would report them.
func (r *Replica) ValidMoves(row, col int) []chess.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game.ValidMoves(row, col)
}

// MovablePieces lists the squares of colour's pieces that can move.
func (r *Replica) MovablePieces(colour chess.Colour) []chess.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game.MovablePieces(colour)
}

// Status returns the replicated game status.
func (r *Replica) Status() engine.Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game.GameStatus()
}

// Render draws the replicated board.
func (r *Replica) Render() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game.Render()
}
