// Package errors provides sentinel errors and error types for the chess rules engine.
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
	// ErrInvalidPosition indicates a board coordinate outside [0,7].
	ErrInvalidPosition = errors.New("position out of range")

	// ErrSquareOccupied indicates an attempt to place a piece on an occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrSquareEmpty indicates an attempt to remove or move a piece from an empty square.
	ErrSquareEmpty = errors.New("square empty")

	// ErrBoardFull indicates a board would exceed 32 pieces.
	ErrBoardFull = errors.New("board full")

	// ErrIllegalMove indicates a command whose preconditions do not hold.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingKing indicates a board without exactly one king per colour.
	ErrMissingKing = errors.New("each side needs exactly one king")

	// ErrInvalidPlayers indicates active and passive players of the same colour.
	ErrInvalidPlayers = errors.New("players must have opposite colours")

	// ErrInvalidChess960Index indicates a Chess960 start index outside [0,959].
	ErrInvalidChess960Index = errors.New("invalid Chess960 index")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a command failure with the game context it happened in.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err     error  // The underlying error
	Ply     int    // Ply of the game the command was applied to
	Square  string // Square involved, e.g. "e4" (if applicable)
	Command string // Kind of the failing command, e.g. "Move"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))

	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("command %q", e.Command))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error with field context.
// It's used for FEN and square parsing errors.
type ParseError struct {
	Err   error  // The underlying error
	Input string // The text being parsed
	Field int    // 1-based field number (0 if not applicable)
	Got   string // What was found
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Field > 0 {
		parts = append(parts, fmt.Sprintf("field %d", e.Field))
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
