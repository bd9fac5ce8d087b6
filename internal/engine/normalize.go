package engine

import (
	"golang.org/x/text/unicode/norm"
)

// Compose replaces the buffer with its canonical composed form (NFC).
func (e *Engine) Compose() error {
	return e.normalize(norm.NFC)
}

// Decompose replaces the buffer with its canonical decomposed form (NFD).
func (e *Engine) Decompose() error {
	return e.normalize(norm.NFD)
}

// normalize renders the buffer, normalizes the text and stores the result.
// A buffer that does not render is left as it was.
func (e *Engine) normalize(form norm.Form) error {
	if e.readOnly {
		return ErrReadOnly
	}

	text, err := e.Render()
	if err != nil {
		return err
	}

	normalized := form.String(text)
	values := make([]uint32, 0, len(normalized))
	for _, r := range normalized {
		values = append(values, uint32(r))
	}
	e.buf.Replace(values)
	return nil
}
