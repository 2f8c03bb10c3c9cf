package session

import (
	"bytes"
	"context"
	"testing"

	"github.com/lgbarn/chess-replica-go/internal/chess"
	"github.com/lgbarn/chess-replica-go/internal/config"
	chesserrors "github.com/lgbarn/chess-replica-go/internal/errors"
	"github.com/lgbarn/chess-replica-go/internal/testutil"
)

func newTestManager(t *testing.T, maxSessions int) (*Manager, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	cfg := config.NewSessionConfig()
	cfg.MaxSessions = maxSessions
	m := NewManager(cfg, config.NewLogger(&logBuf, config.Lifecycle))
	t.Cleanup(m.CloseAll)
	return m, &logBuf
}

func TestManager_CreateGet(t *testing.T) {
	m, logBuf := newTestManager(t, 0)

	s, err := m.Create()
	testutil.RequireNoError(t, err)

	got, err := m.Get(s.ID())
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, got == s, "Get returned a different session")
	testutil.AssertContains(t, logBuf.String(), "session "+s.ID()+" opened")

	_, err = m.Get("missing")
	testutil.AssertErrorIs(t, err, chesserrors.ErrSessionNotFound)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m, _ := newTestManager(t, 0)
	a, _ := m.Create()
	b, _ := m.Create()

	res, err := a.Move(context.Background(), "e2", "e4", chess.PromoteQueen)
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, res.Outcome.Success)

	snap, err := b.Snapshot(context.Background())
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, snap.Payload, testutil.PayloadAfter(t))
}

func TestManager_IDsSorted(t *testing.T) {
	m, _ := newTestManager(t, 0)
	var want []string
	for i := 0; i < 5; i++ {
		s, err := m.Create()
		testutil.RequireNoError(t, err)
		want = append(want, s.ID())
	}

	ids := m.IDs()
	testutil.AssertEqual(t, len(ids), 5)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs() not sorted: %v", ids)
		}
	}
	for _, id := range want {
		if _, err := m.Get(id); err != nil {
			t.Errorf("Get(%s): %v", id, err)
		}
	}
}

func TestManager_Remove(t *testing.T) {
	m, logBuf := newTestManager(t, 0)
	s, _ := m.Create()

	testutil.RequireNoError(t, m.Remove(s.ID()))
	testutil.AssertEqual(t, m.Len(), 0)
	testutil.AssertContains(t, logBuf.String(), "closed after 0 updates")

	_, err := s.Move(context.Background(), "e2", "e4", chess.PromoteQueen)
	testutil.AssertErrorIs(t, err, chesserrors.ErrSessionClosed)

	testutil.AssertErrorIs(t, m.Remove(s.ID()), chesserrors.ErrSessionNotFound)
}

func TestManager_Limit(t *testing.T) {
	m, _ := newTestManager(t, 2)
	first, _ := m.Create()
	_, _ = m.Create()

	_, err := m.Create()
	testutil.AssertErrorIs(t, err, chesserrors.ErrSessionLimit)

	testutil.RequireNoError(t, m.Remove(first.ID()))
	_, err = m.Create()
	testutil.AssertNoError(t, err)
}

func TestManager_CloseAll(t *testing.T) {
	m, _ := newTestManager(t, 0)
	a, _ := m.Create()
	b, _ := m.Create()

	m.CloseAll()

	testutil.AssertEqual(t, m.Len(), 0)
	for _, s := range []*Session{a, b} {
		_, err := s.Snapshot(context.Background())
		testutil.AssertErrorIs(t, err, chesserrors.ErrSessionClosed)
	}
}
