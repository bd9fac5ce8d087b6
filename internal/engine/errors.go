package engine

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrOutOfRange indicates a position does not address an existing code point.
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidCodePoint indicates a buffer value is not a Unicode scalar value.
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrReadOnly indicates a mutating command was applied to a read-only engine.
	ErrReadOnly = errors.New("buffer is read-only")

	// ErrNotBufferCommand indicates a command the caller must handle itself.
	ErrNotBufferCommand = errors.New("not a buffer command")
)

// PositionError reports a Modify or Kill past the end of the buffer.
type PositionError struct {
	Op  string // Command name
	Pos uint32 // Attempted position
	Len int    // Buffer length at the time
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: position %d out of range (length %d)", e.Op, e.Pos, e.Len)
}

func (e *PositionError) Unwrap() error {
	return ErrOutOfRange
}

// RenderError reports the first buffer value that is not a scalar value.
type RenderError struct {
	Index int    // Offset of the offending value
	Value uint32 // The offending value
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("invalid code point 0x%X at position %d", e.Value, e.Index)
}

func (e *RenderError) Unwrap() error {
	return ErrInvalidCodePoint
}
