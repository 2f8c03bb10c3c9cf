package testutil

import (
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chess-replica-go/internal/errors"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
	msg    string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
}

func TestAssertions(t *testing.T) {
	wrapped := chesserrors.Wrap(chesserrors.ErrIllegalMove, "e2-e5")

	tests := []struct {
		name     string
		run      func(testing.TB)
		wantFail bool
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, []int{1, 2}, []int{1, 2}) }, false},
		{"not equal", func(tb testing.TB) { AssertEqual(tb, 1, 2) }, true},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, false},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, wrapped) }, true},
		{"require no error", func(tb testing.TB) { RequireNoError(tb, wrapped) }, true},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, wrapped, chesserrors.ErrIllegalMove) }, false},
		{"error is not", func(tb testing.TB) { AssertErrorIs(tb, wrapped, chesserrors.ErrWrongTurn) }, true},
		{"contains", func(tb testing.TB) { AssertContains(tb, "kingside castling", "castling") }, false},
		{"missing substring", func(tb testing.TB) { AssertContains(tb, "e2 to e4", "takes") }, true},
		{"true", func(tb testing.TB) { AssertTrue(tb, true) }, false},
		{"false as true", func(tb testing.TB) { AssertTrue(tb, false) }, true},
		{"false", func(tb testing.TB) { AssertFalse(tb, false) }, false},
		{"true as false", func(tb testing.TB) { AssertFalse(tb, true) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.run(r)
			if r.failed != tt.wantFail {
				t.Errorf("failed = %v, want %v (message %q)", r.failed, tt.wantFail, r.msg)
			}
		})
	}
}

func TestAssertions_MessagePrefix(t *testing.T) {
	r := &recorder{TB: t}
	AssertTrue(r, false, "ply %d", 7)

	if want := "ply 7: expected true but got false"; r.msg != want {
		t.Errorf("message = %q, want %q", r.msg, want)
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"single string", []any{"hello"}, "hello"},
		{"single int", []any{42}, "42"},
		{"format string", []any{"move %s", "e2e4"}, "move e2e4"},
		{"format multiple", []any{"%s %d %s", "ply", 3, "black"}, "ply 3 black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
