package command

import (
	"fmt"

	"github.com/PaprikaX33/Uniedit/internal/codec"
)

// Kind discriminates the command variants.
type Kind uint8

const (
	// KindQuit ends the session.
	KindQuit Kind = iota

	// KindHelp requests the usage text.
	KindHelp

	// KindCompress normalizes the buffer to NFC.
	KindCompress

	// KindDecompress normalizes the buffer to NFD.
	KindDecompress

	// KindErase clears the buffer.
	KindErase

	// KindValid reports whether the buffer renders as valid Unicode.
	KindValid

	// KindAppendLiteral appends Value.
	KindAppendLiteral

	// KindAppendText appends Text.
	KindAppendText

	// KindInsertLiteral inserts Value at Pos.
	KindInsertLiteral

	// KindInsertText inserts Text at Pos.
	KindInsertText

	// KindModify replaces the code point at Pos with Value.
	KindModify

	// KindKill removes the code point at Pos.
	KindKill

	// KindPrint displays the raw buffer in Base.
	KindPrint

	// KindRender displays the buffer encoded as Encoding.
	KindRender

	// KindWrite writes the buffer encoded as Encoding to Path.
	KindWrite

	// KindRead replaces the buffer with the decoded contents of Path.
	KindRead
)

var kindNames = [...]string{
	KindQuit:          "quit",
	KindHelp:          "help",
	KindCompress:      "compress",
	KindDecompress:    "decompress",
	KindErase:         "erase",
	KindValid:         "valid",
	KindAppendLiteral: "appendLiteral",
	KindAppendText:    "appendText",
	KindInsertLiteral: "insertLiteral",
	KindInsertText:    "insertText",
	KindModify:        "modify",
	KindKill:          "kill",
	KindPrint:         "print",
	KindRender:        "render",
	KindWrite:         "write",
	KindRead:          "read",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Mutates reports whether commands of this kind change the buffer.
func (k Kind) Mutates() bool {
	switch k {
	case KindCompress, KindDecompress, KindErase,
		KindAppendLiteral, KindAppendText,
		KindInsertLiteral, KindInsertText,
		KindModify, KindKill, KindRead:
		return true
	default:
		return false
	}
}

// Base selects the number base for printing.
type Base uint8

const (
	// Decimal prints code points in base 10.
	Decimal Base = iota

	// Hex prints code points in base 16.
	Hex
)

// String returns the name of the base.
func (b Base) String() string {
	if b == Hex {
		return "hex"
	}
	return "decimal"
}

// Command is a parsed input line. Only the fields relevant to Kind are set.
// Positions are offsets into the buffer at the time the command runs.
type Command struct {
	Kind Kind

	// Pos is the target offset for insert, modify and kill.
	Pos uint32

	// Value is the code point for the literal variants and modify.
	Value uint32

	// Text is the code-point payload for the text variants.
	Text []uint32

	// Base is the print base.
	Base Base

	// Encoding is the render or write encoding.
	Encoding codec.Encoding

	// Path is the file path for write and read, taken verbatim.
	Path string
}

// String returns a compact description of the command, suitable for logs.
func (c Command) String() string {
	switch c.Kind {
	case KindAppendLiteral:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Value)
	case KindAppendText:
		return fmt.Sprintf("%s(%d code points)", c.Kind, len(c.Text))
	case KindInsertLiteral, KindModify:
		return fmt.Sprintf("%s(pos=%d, %d)", c.Kind, c.Pos, c.Value)
	case KindInsertText:
		return fmt.Sprintf("%s(pos=%d, %d code points)", c.Kind, c.Pos, len(c.Text))
	case KindKill:
		return fmt.Sprintf("%s(pos=%d)", c.Kind, c.Pos)
	case KindPrint:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Base)
	case KindRender:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Encoding)
	case KindWrite:
		return fmt.Sprintf("%s(%s, %q)", c.Kind, c.Encoding, c.Path)
	case KindRead:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Path)
	default:
		return c.Kind.String()
	}
}
