// Package httpx exposes game sessions over HTTP with JSON bodies.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/lgbarn/chess-replica-go/internal/config"
	chesserrors "github.com/lgbarn/chess-replica-go/internal/errors"
	"github.com/lgbarn/chess-replica-go/internal/session"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"

// Server wires the HTTP layer to the session manager.
type Server struct {
	sessions *session.Manager
	cfg      *config.ServerConfig
	log      *config.Logger

	srvMu sync.Mutex
	srv   *http.Server
}

// NewServer builds a Server over an existing manager.
func NewServer(sessions *session.Manager, cfg *config.ServerConfig, log *config.Logger) *Server {
	return &Server{sessions: sessions, cfg: cfg, log: log}
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Listen serves on addr until Close is called.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.log.Printf(config.Lifecycle, "HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/sessions", s.withJSON(s.handleCreate))
	mux.HandleFunc("GET /api/sessions", s.withJSON(s.handleList))
	mux.HandleFunc("GET /api/sessions/{id}", s.withJSON(s.handleState))
	mux.HandleFunc("DELETE /api/sessions/{id}", s.withJSON(s.handleDelete))
	mux.HandleFunc("POST /api/sessions/{id}/moves", s.withJSON(s.handleMove))
	mux.HandleFunc("GET /api/sessions/{id}/moves", s.withJSON(s.handleValidMoves))
	mux.HandleFunc("POST /api/sessions/{id}/reset", s.withJSON(s.handleReset))
	mux.HandleFunc("GET /api/sessions/{id}/payload", s.handleGetPayload)
	mux.HandleFunc("PUT /api/sessions/{id}/payload", s.withJSON(s.handlePutPayload))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFailure maps session and context errors to a status code.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chesserrors.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chesserrors.ErrSessionClosed):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, chesserrors.ErrSessionLimit):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody reads a JSON body, writing the error response itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("X-Content-Type-Options", "nosniff")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
