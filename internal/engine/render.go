package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Render converts the buffer to text. It fails on the first value that is
// not a Unicode scalar value and produces nothing in that case.
func (e *Engine) Render() (string, error) {
	values := e.buf.Values()

	var sb strings.Builder
	sb.Grow(len(values))
	for i, v := range values {
		if !isScalar(v) {
			return "", &RenderError{Index: i, Value: v}
		}
		sb.WriteRune(rune(v))
	}
	return sb.String(), nil
}

// Valid reports whether the buffer renders.
func (e *Engine) Valid() bool {
	_, err := e.Render()
	return err == nil
}

// Stats summarizes the buffer.
type Stats struct {
	// CodePoints is the buffer length.
	CodePoints int

	// Graphemes is the number of user-perceived characters.
	// Zero when the buffer does not render.
	Graphemes int

	// Valid reports whether every value is a scalar value.
	Valid bool
}

// Stats returns a summary of the buffer.
func (e *Engine) Stats() Stats {
	s := Stats{CodePoints: e.buf.Len()}

	text, err := e.Render()
	if err != nil {
		return s
	}
	s.Valid = true
	s.Graphemes = uniseg.GraphemeClusterCount(text)
	return s
}

// isScalar reports whether v is a Unicode scalar value: at most U+10FFFF
// and outside the surrogate range.
func isScalar(v uint32) bool {
	return v <= utf8.MaxRune && utf8.ValidRune(rune(v))
}
