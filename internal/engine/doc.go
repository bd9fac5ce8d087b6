// Package engine applies parsed commands to the code-point buffer.
//
// The Engine owns a buffer.Buffer and is the only way to read or change it.
// Each call to Apply runs one command to completion: it mutates the
// buffer, returns a textual report, or returns encoded bytes.
//
// # Basic Usage
//
//	e := engine.New()
//
//	cmd, _ := command.Parse("hello")
//	e.Apply(cmd)                       // buffer: [104 101 108 108 111]
//
//	cmd, _ = command.Parse(".p")
//	out, _ := e.Apply(cmd)             // out.Text: "[104, 101, 108, 108, 111]"
//
//	cmd, _ = command.Parse(".w32 hello.txt")
//	out, _ = e.Apply(cmd)              // out.Data: 00 00 FE FF 00 00 00 68 ...
//
// Write returns the bytes to persist; the caller decides where they go.
// Read is the mirror image: the caller decodes the file and hands the code
// points to Replace. Quit and Help have no buffer semantics and are
// rejected with ErrNotBufferCommand.
//
// # Positions
//
// Insert at or past the end of the buffer appends. Modify and Kill past the
// end leave the buffer untouched and return a *PositionError carrying the
// attempted position and the current length.
//
// # Rendering
//
// Render, Write, Valid, Compress and Decompress first render the buffer:
// every value must be a Unicode scalar value. A single surrogate or value
// above U+10FFFF fails the whole operation with a *RenderError and nothing
// is produced or changed.
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrOutOfRange: Modify or Kill position past the end (wrapped by PositionError)
//   - ErrInvalidCodePoint: buffer value is not a scalar value (wrapped by RenderError)
//   - ErrReadOnly: mutating command on a read-only engine
//   - ErrNotBufferCommand: command must be handled by the caller
//
// An Engine is not safe for concurrent use.
package engine
