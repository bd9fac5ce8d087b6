package buffer

import (
	"errors"
	"slices"
)

// ErrOffsetOutOfRange is returned when a position does not address an
// existing code point.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// Buffer holds an ordered sequence of code points.
type Buffer struct {
	values []uint32
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Read Operations

// Len returns the number of code points.
func (b *Buffer) Len() int {
	return len(b.values)
}

// IsEmpty returns true if the buffer holds no code points.
func (b *Buffer) IsEmpty() bool {
	return len(b.values) == 0
}

// At returns the code point at pos.
func (b *Buffer) At(pos uint32) (uint32, bool) {
	if !b.contains(pos) {
		return 0, false
	}
	return b.values[pos], true
}

// Values returns a copy of the sequence.
func (b *Buffer) Values() []uint32 {
	return slices.Clone(b.values)
}

// Write Operations

// Append adds values to the end.
func (b *Buffer) Append(values ...uint32) {
	b.values = append(b.values, values...)
}

// Insert places values before pos, shifting the tail forward.
// A pos at or past the end appends. Returns the offset actually used.
func (b *Buffer) Insert(pos uint32, values ...uint32) int {
	at := b.clamp(pos)
	b.values = slices.Insert(b.values, at, values...)
	return at
}

// Set replaces the code point at pos and returns the previous value.
func (b *Buffer) Set(pos uint32, value uint32) (uint32, error) {
	if !b.contains(pos) {
		return 0, ErrOffsetOutOfRange
	}
	old := b.values[pos]
	b.values[pos] = value
	return old, nil
}

// Delete removes the code point at pos and returns it.
func (b *Buffer) Delete(pos uint32) (uint32, error) {
	if !b.contains(pos) {
		return 0, ErrOffsetOutOfRange
	}
	old := b.values[pos]
	b.values = slices.Delete(b.values, int(pos), int(pos)+1)
	return old, nil
}

// Clear removes every code point.
func (b *Buffer) Clear() {
	b.values = b.values[:0]
}

// Replace swaps the whole sequence for a copy of values.
func (b *Buffer) Replace(values []uint32) {
	b.values = append(b.values[:0], values...)
}

// contains reports whether pos addresses an existing code point.
// The comparison is done in uint64 so 32-bit platforms cannot wrap.
func (b *Buffer) contains(pos uint32) bool {
	return uint64(pos) < uint64(len(b.values))
}

// clamp maps pos to an insertion offset, pinning it to the end.
func (b *Buffer) clamp(pos uint32) int {
	if !b.contains(pos) {
		return len(b.values)
	}
	return int(pos)
}
