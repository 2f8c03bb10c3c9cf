// Package session runs networked games. Each Session owns one engine.Game
// and applies every command on a single goroutine, so the engine is never
// used concurrently. Changes are published as codec payloads to any
// number of subscribers; Replica rebuilds the game on the receiving side.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/config"
	"github.com/lgbarn/chess-replica-go/internal/engine"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

type request struct {
	cmd   Command
	reply chan Result
}

// Session is one authoritative game.
type Session struct {
	id      string
	created time.Time
	log     *config.Logger

	// owned by the loop goroutine
	game *engine.Game
	seq  uint64

	inbox     chan request
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	subMu     sync.Mutex
	subs      map[int]chan Snapshot
	nextSub   int
	subBuffer int
}

// New starts a session on the standard starting position.
func New(cfg *config.SessionConfig, log *config.Logger) *Session {
	s := &Session{
		id:        uuid.NewString(),
		created:   time.Now(),
		log:       log,
		game:      engine.NewGame(),
		inbox:     make(chan request, cfg.QueueSize),
		done:      make(chan struct{}),
		subs:      make(map[int]chan Snapshot),
		subBuffer: cfg.SubscriberBuffer,
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Created returns when the session was started.
func (s *Session) Created() time.Time {
	return s.created
}

// Submit queues cmd and waits for its result. It returns ctx.Err() if ctx
// ends first and ErrSessionClosed once Close has been called. A rejected
// move is not a Submit error; it is reported in Result.
func (s *Session) Submit(ctx context.Context, cmd Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	select {
	case <-s.done:
		return Result{}, errors.ErrSessionClosed
	default:
	}

	req := request{cmd: cmd, reply: make(chan Result, 1)}
	select {
	case s.inbox <- req:
	case <-s.done:
		return Result{}, errors.ErrSessionClosed
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res, nil
	case <-s.done:
		return Result{}, errors.ErrSessionClosed
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Move submits a move command.
func (s *Session) Move(ctx context.Context, from, to string, promotion chess.PromotionChoice) (Result, error) {
	return s.Submit(ctx, MoveCommand(from, to, promotion))
}

// View runs fn with exclusive access to the game.
func (s *Session) View(ctx context.Context, fn func(g *engine.Game)) error {
	_, err := s.Submit(ctx, ViewCommand(fn))
	return err
}

// Snapshot returns the current position without publishing it.
func (s *Session) Snapshot(ctx context.Context) (Snapshot, error) {
	var p codec.Payload
	res, err := s.Submit(ctx, ViewCommand(func(g *engine.Game) {
		p = g.SerializePosition()
	}))
	return Snapshot{SessionID: s.id, Seq: res.Seq, Payload: p}, err
}

// Subscribe registers for snapshots. The channel is closed by cancel or by
// Close. Snapshots that do not fit in the buffer are dropped for this
// subscriber only; a slow peer should resync from Snapshot.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, s.subBuffer)

	s.subMu.Lock()
	select {
	case <-s.done:
		s.subMu.Unlock()
		close(ch)
		return ch, func() {}
	default:
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close stops the loop and closes every subscriber channel. It is safe to
// call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()

		s.subMu.Lock()
		for id, ch := range s.subs {
			delete(s.subs, id)
			close(ch)
		}
		s.subMu.Unlock()

		s.log.Printf(config.Lifecycle, "session %s closed after %d updates", s.id, s.seq)
	})
}

func (s *Session) loop() {
	defer s.wg.Done()

	for {
		select {
		case req := <-s.inbox:
			res := s.handle(req.cmd)
			if req.cmd.Kind != CmdView && req.cmd.View != nil {
				req.cmd.View(s.game)
			}
			res.Seq = s.seq
			req.reply <- res
		case <-s.done:
			return
		}
	}
}

func (s *Session) handle(cmd Command) Result {
	switch cmd.Kind {
	case CmdMove:
		out := s.game.ApplyMove(cmd.From, cmd.To, cmd.Promotion)
		if !out.Success {
			s.log.Printf(config.Commentary, "session %s: rejected %s-%s: %s", s.id, cmd.From, cmd.To, out.Message)
			return Result{Outcome: out, Err: out.Err}
		}
		s.log.Printf(config.Commentary, "session %s: %s", s.id, out.Message)
		return Result{Outcome: out, Snapshot: s.publish(out)}

	case CmdReset:
		s.game.Initialize()
		out := engine.MoveOutcome{Success: true, Message: "game reset"}
		s.log.Printf(config.Commentary, "session %s: reset", s.id)
		return Result{Outcome: out, Snapshot: s.publish(out)}

	case CmdLoad:
		if err := codec.Validate(cmd.Payload); err != nil {
			s.log.Printf(config.Commentary, "session %s: rejected payload: %v", s.id, err)
			return Result{Outcome: engine.MoveOutcome{Message: err.Error(), Err: err}, Err: err}
		}
		s.game.DeserializePosition(cmd.Payload)
		out := engine.MoveOutcome{Success: true, Message: "position loaded"}
		s.log.Printf(config.Commentary, "session %s: loaded %s", s.id, cmd.Payload)
		return Result{Outcome: out, Snapshot: s.publish(out)}

	case CmdView:
		if cmd.View != nil {
			cmd.View(s.game)
		}
		return Result{Outcome: engine.MoveOutcome{Success: true}}

	default:
		err := errors.Wrapf(errors.ErrIllegalMove, "unknown command %d", cmd.Kind)
		return Result{Outcome: engine.MoveOutcome{Message: err.Error(), Err: err}, Err: err}
	}
}

// publish sends the new position to every subscriber without blocking.
func (s *Session) publish(out engine.MoveOutcome) Snapshot {
	s.seq++
	snap := Snapshot{
		SessionID: s.id,
		Seq:       s.seq,
		Payload:   s.game.SerializePosition(),
		Outcome:   out,
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			s.log.Printf(config.Commentary, "session %s: subscriber %d full, dropped update %d", s.id, id, snap.Seq)
		}
	}
	return snap
}
