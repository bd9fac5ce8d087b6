// Package codec converts code-point sequences to and from the byte forms
// uniedit reads and writes: UTF-8 and BOM-prefixed UTF-32 in either byte
// order.
package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// Encoding selects the byte representation used for rendering and files.
type Encoding uint8

const (
	// UTF8 is UTF-8 without a byte-order mark.
	UTF8 Encoding = iota

	// UTF32BE is big-endian UTF-32 prefixed with 00 00 FE FF.
	UTF32BE

	// UTF32LE is little-endian UTF-32 prefixed with FF FE 00 00.
	UTF32LE
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF32BE:
		return "utf-32"
	case UTF32LE:
		return "utf-32le"
	default:
		return "unknown"
	}
}

// ParseEncoding parses an encoding name as used in configuration.
// Names are case-insensitive; "utf-32be" is accepted as an alias of "utf-32".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-32", "utf32", "utf-32be", "utf32be":
		return UTF32BE, nil
	case "utf-32le", "utf32le":
		return UTF32LE, nil
	default:
		return UTF8, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// Byte-order marks.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
)

// BOM returns the byte-order mark written ahead of content in the given
// encoding. UTF-8 output carries no mark.
func BOM(enc Encoding) []byte {
	switch enc {
	case UTF32BE:
		return append([]byte(nil), bomUTF32BE...)
	case UTF32LE:
		return append([]byte(nil), bomUTF32LE...)
	default:
		return nil
	}
}

// Detect sniffs the encoding of content from its byte-order mark.
// Content without a UTF-32 mark is treated as UTF-8.
func Detect(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF32BE):
		return UTF32BE
	case bytes.HasPrefix(content, bomUTF32LE):
		return UTF32LE
	default:
		return UTF8
	}
}

// StripBOM removes a byte-order mark matching enc, if present.
// For UTF-8 an optional EF BB BF prefix is removed.
func StripBOM(content []byte, enc Encoding) []byte {
	var bom []byte
	switch enc {
	case UTF8:
		bom = bomUTF8
	case UTF32BE:
		bom = bomUTF32BE
	case UTF32LE:
		bom = bomUTF32LE
	}
	return bytes.TrimPrefix(content, bom)
}
