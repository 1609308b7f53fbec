// Package errors provides sentinel errors and error types for the
// chesscore engine. It defines the common failure conditions and a
// structured move error that preserves context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string (strict mode only;
	// lenient loading tolerates malformed input best-effort).
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation indicates a SAN token that cannot be parsed or
	// resolved against the current position.
	ErrInvalidNotation = errors.New("invalid SAN notation")

	// ErrAmbiguousMove indicates a SAN token matched by more than one
	// piece even after applying its disambiguators.
	ErrAmbiguousMove = errors.New("ambiguous SAN notation")

	// ErrInvalidMove indicates a caller-supplied move referencing
	// out-of-range squares or an empty source square.
	ErrInvalidMove = errors.New("invalid move")
)

// MoveError wraps a move failure with the offending input. It supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying sentinel error
	SAN      string // The SAN token, if the move came from notation
	From, To int    // Square indices for direct moves (-1 when unknown)
}

// Error returns a formatted message including the available context.
func (e *MoveError) Error() string {
	if e.SAN != "" {
		return fmt.Sprintf("move %q: %v", e.SAN, e.Err)
	}
	if e.From >= 0 || e.To >= 0 {
		return fmt.Sprintf("move %d-%d: %v", e.From, e.To, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NotationError builds a MoveError for a failed SAN resolution.
func NotationError(err error, san string) error {
	return &MoveError{Err: err, SAN: san, From: -1, To: -1}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
