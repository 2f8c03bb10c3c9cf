package httpx

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/codec"
	"github.com/lgbarn/chess-replica-go/internal/config"
	"github.com/lgbarn/chess-replica-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-replica-go/internal/errors"
	"github.com/lgbarn/chess-replica-go/internal/output"
	"github.com/lgbarn/chess-replica-go/internal/session"
)

const binaryContentType = "application/octet-stream"

type stateResponse struct {
	ID    string            `json:"id"`
	Seq   uint64            `json:"seq"`
	State *output.JSONState `json:"state"`
}

type moveBody struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion"`
}

type moveResponse struct {
	Outcome output.JSONOutcome `json:"outcome"`
	Seq     uint64             `json:"seq"`
	State   *output.JSONState  `json:"state"`
}

type payloadBody struct {
	Payload string `json:"payload"`
}

// lookup resolves the {id} path value, writing 404 when it is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return nil, false
	}
	return sess, true
}

// currentState renders the session's game on its own goroutine.
func currentState(r *http.Request, sess *session.Session) (stateResponse, error) {
	resp, _, err := submitWithState(r, sess, session.ViewCommand(nil))
	return resp, err
}

// submitWithState runs cmd and renders the game in the same loop turn, so
// the state and seq match the command's result.
func submitWithState(r *http.Request, sess *session.Session, cmd session.Command) (stateResponse, session.Result, error) {
	resp := stateResponse{ID: sess.ID()}
	cmd = cmd.WithView(func(g *engine.Game) {
		resp.State = output.StateToJSON(g)
	})
	res, err := sess.Submit(r.Context(), cmd)
	resp.Seq = res.Seq
	return resp, res, err
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create()
	if err != nil {
		writeFailure(w, err)
		return
	}
	resp, err := currentState(r, sess)
	if err != nil {
		_ = s.sessions.Remove(sess.ID())
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.sessions.IDs()})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	resp, err := currentState(r, sess)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Remove(r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var body moveBody
	if !decodeBody(w, r, &body) {
		return
	}
	promotion, ok := chess.ParsePromotion(strings.ToLower(strings.TrimSpace(body.Promotion)))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid promotion choice")
		return
	}

	from := strings.ToLower(strings.TrimSpace(body.From))
	to := strings.ToLower(strings.TrimSpace(body.To))
	state, res, err := submitWithState(r, sess, session.MoveCommand(from, to, promotion))
	if err != nil {
		writeFailure(w, err)
		return
	}
	resp := moveResponse{Outcome: output.OutcomeToJSON(res.Outcome), Seq: state.Seq, State: state.State}
	if !res.Outcome.Success {
		s.log.Printf(config.Commentary, "%s %s-%s rejected: %s", sess.ID(), from, to, res.Outcome.Message)
		writeJSON(w, rejectionStatus(res.Err), resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// rejectionStatus is 400 for malformed input and 422 for rule violations.
func rejectionStatus(err error) int {
	if errors.Is(err, chesserrors.ErrInvalidSquare) || errors.Is(err, chesserrors.ErrInvalidPromotion) {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func (s *Server) handleValidMoves(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	from := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("from")))
	sq := chess.ParseSquare(from)
	if !sq.Valid() {
		writeError(w, http.StatusBadRequest, "invalid from square")
		return
	}

	var moves []chess.Position
	err := sess.View(r.Context(), func(g *engine.Game) {
		moves = g.ValidMoves(sq.Row, sq.Col)
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":  sq.String(),
		"moves": output.SquareNames(moves),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	resp, _, err := submitWithState(r, sess, session.ResetCommand())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetPayload returns the 40-byte binary framing.
func (s *Server) handleGetPayload(w http.ResponseWriter, r *http.Request) {
	applyAPISecurityHeaders(w.Header())
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	snap, err := sess.Snapshot(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	data, _ := snap.Payload.MarshalBinary()
	w.Header().Set("Content-Type", binaryContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handlePutPayload accepts the JSON text form or, with an octet-stream
// content type, the binary framing.
func (s *Server) handlePutPayload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var p codec.Payload
	if strings.HasPrefix(r.Header.Get("Content-Type"), binaryContentType) {
		defer r.Body.Close()
		data, err := io.ReadAll(r.Body)
		if err != nil {
			if isBodyTooLarge(err) {
				writeError(w, http.StatusRequestEntityTooLarge, "request too large")
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := p.UnmarshalBinary(data); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		var body payloadBody
		if !decodeBody(w, r, &body) {
			return
		}
		parsed, err := codec.ParsePayload(body.Payload)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		p = parsed
	}

	resp, res, err := submitWithState(r, sess, session.LoadCommand(p))
	if err != nil {
		writeFailure(w, err)
		return
	}
	if res.Err != nil {
		writeError(w, http.StatusUnprocessableEntity, res.Err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
