// Package errors provides sentinel errors and error types for the chess core
// and the layers built on it. Every failure is reported as a value that can be
// inspected with errors.Is() and errors.As(); nothing in the core panics.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a square name that is not a file a-h
	// followed by a rank 1-8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates the piece's movement
	// pattern, is blocked, or fails the castling preconditions.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongTurn indicates the origin holds a piece of the side not to move.
	ErrWrongTurn = errors.New("not your turn")

	// ErrNoPiece indicates the origin square is empty.
	ErrNoPiece = errors.New("no piece on square")

	// ErrOwnPiece indicates the destination holds a piece of the mover.
	ErrOwnPiece = errors.New("cannot capture own piece")

	// ErrKingInCheck indicates the move would leave the mover's king attacked.
	ErrKingInCheck = errors.New("move leaves king in check")

	// ErrInvalidPromotion indicates a promotion choice outside queen, rook,
	// bishop and knight.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrCorruptPayload indicates a serialized position that fails strict
	// validation or has the wrong framing.
	ErrCorruptPayload = errors.New("corrupt payload")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionClosed indicates a command sent to a stopped session.
	ErrSessionClosed = errors.New("session closed")

	// ErrSessionLimit indicates the configured maximum of open sessions.
	ErrSessionLimit = errors.New("too many sessions")
)

// MoveError wraps a move rejection with the squares involved and the ply at
// which it was attempted. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err  error  // The underlying sentinel
	From string // Origin square name as given by the caller
	To   string // Destination square name as given by the caller
	Ply  int    // Ply number of the attempt (0 if not tracked)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
