// Package errors provides sentinel errors and error types for the rules core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOccupiedSquare indicates a piece was placed on a square that already
	// holds one.
	ErrOccupiedSquare = errors.New("square already occupied")

	// ErrEmptySquare indicates a relocation from a square with no piece.
	ErrEmptySquare = errors.New("square is empty")

	// ErrOffBoard indicates a location outside the board geometry.
	ErrOffBoard = errors.New("location off board")

	// ErrMissingKing indicates a king-safety query for a colour with no king.
	ErrMissingKing = errors.New("no king for colour")

	// ErrMultipleKings indicates a king-safety query for a colour with more
	// than one king.
	ErrMultipleKings = errors.New("more than one king for colour")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPosition indicates a malformed piece-placement string.
	ErrInvalidPosition = errors.New("invalid position")
)

// RuleError wraps errors with board context: the operation that failed, the
// piece involved and the location it was working on. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type RuleError struct {
	Err      error  // The underlying error
	Op       string // Operation name, e.g. "place" or "move sight"
	Piece    string // Description of the piece involved (if any)
	Location string // Location the operation was working on (if any)
}

// Error returns a formatted error message including all available context.
func (e *RuleError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.Location != "" {
		parts = append(parts, "at "+e.Location)
	}

	context := strings.Join(parts, " ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RuleError wrapper.
func (e *RuleError) Unwrap() error {
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
