package engine

import (
	"fmt"

	"github.com/PaprikaX33/Uniedit/internal/codec"
	"github.com/PaprikaX33/Uniedit/internal/command"
	"github.com/PaprikaX33/Uniedit/internal/engine/buffer"
)

// Output is what applying a command produced.
// Text carries reports (print, valid); Data carries encoded bytes (render,
// write). Pure mutations leave both empty.
type Output struct {
	Text string
	Data []byte
}

// Engine owns the code-point buffer and applies commands to it.
type Engine struct {
	buf      *buffer.Buffer
	readOnly bool

	// Initialization
	initContent []uint32
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.New(buffer.WithContent(e.initContent))
	e.initContent = nil
	return e
}

// Len returns the number of code points in the buffer.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// CodePoints returns a copy of the buffer contents.
func (e *Engine) CodePoints() []uint32 {
	return e.buf.Values()
}

// IsReadOnly returns true if the engine rejects mutations.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// Apply executes one command against the buffer.
func (e *Engine) Apply(cmd command.Command) (Output, error) {
	if cmd.Kind.Mutates() && e.readOnly {
		return Output{}, ErrReadOnly
	}

	switch cmd.Kind {
	case command.KindErase:
		e.buf.Clear()
	case command.KindAppendLiteral:
		e.buf.Append(cmd.Value)
	case command.KindAppendText:
		e.buf.Append(cmd.Text...)
	case command.KindInsertLiteral:
		e.buf.Insert(cmd.Pos, cmd.Value)
	case command.KindInsertText:
		e.buf.Insert(cmd.Pos, cmd.Text...)
	case command.KindModify:
		return Output{}, e.Modify(cmd.Pos, cmd.Value)
	case command.KindKill:
		return Output{}, e.Kill(cmd.Pos)
	case command.KindCompress:
		return Output{}, e.Compose()
	case command.KindDecompress:
		return Output{}, e.Decompose()
	case command.KindPrint:
		return Output{Text: e.Print(cmd.Base)}, nil
	case command.KindValid:
		if e.Valid() {
			return Output{Text: "Valid"}, nil
		}
		return Output{Text: "Invalid"}, nil
	case command.KindRender, command.KindWrite:
		data, err := e.Encode(cmd.Encoding)
		if err != nil {
			return Output{}, err
		}
		return Output{Data: data}, nil
	default:
		return Output{}, fmt.Errorf("%w: %s", ErrNotBufferCommand, cmd.Kind)
	}
	return Output{}, nil
}

// Modify replaces the code point at pos. Past the end nothing changes.
func (e *Engine) Modify(pos, value uint32) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if _, err := e.buf.Set(pos, value); err != nil {
		return &PositionError{Op: command.KindModify.String(), Pos: pos, Len: e.buf.Len()}
	}
	return nil
}

// Kill removes the code point at pos. Past the end nothing changes.
func (e *Engine) Kill(pos uint32) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if _, err := e.buf.Delete(pos); err != nil {
		return &PositionError{Op: command.KindKill.String(), Pos: pos, Len: e.buf.Len()}
	}
	return nil
}

// Replace swaps the entire buffer for values, as a file read does.
func (e *Engine) Replace(values []uint32) error {
	if e.readOnly {
		return ErrReadOnly
	}
	e.buf.Replace(values)
	return nil
}

// Encode renders the buffer and encodes it.
func (e *Engine) Encode(enc codec.Encoding) ([]byte, error) {
	text, err := e.Render()
	if err != nil {
		return nil, err
	}
	return codec.Encode(text, enc)
}
