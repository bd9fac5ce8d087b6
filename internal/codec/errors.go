package codec

import (
	"errors"
	"fmt"
)

// Errors returned by codec operations.
var (
	// ErrUnknownEncoding indicates an encoding name was not recognized.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrInvalidUTF8 indicates the content is not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrTruncated indicates UTF-32 content whose length is not a multiple of four.
	ErrTruncated = errors.New("truncated utf-32 content")
)

// DecodeError describes where decoding failed.
type DecodeError struct {
	Encoding Encoding
	Offset   int // Byte offset of the failure, relative to the content after the BOM
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at byte %d: %v", e.Encoding, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
