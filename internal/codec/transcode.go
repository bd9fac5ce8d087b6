package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode/utf32"
)

// body returns the x/text encoding used for the content after the BOM.
// The mark itself is handled here so both byte orders get the exact
// prefix uniedit files carry.
func body(enc Encoding) encoding.Encoding {
	switch enc {
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	default:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	}
}

// Encode converts well-formed text to bytes in the given encoding.
// UTF-32 output is always prefixed with its byte-order mark, even when
// text is empty.
func Encode(text string, enc Encoding) ([]byte, error) {
	if enc == UTF8 {
		return []byte(text), nil
	}

	data, err := body(enc).NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	return append(BOM(enc), data...), nil
}

// Decode converts content in the given encoding to code points.
// A leading byte-order mark matching enc is skipped.
//
// UTF-8 content must be well-formed. UTF-32 content must be a whole number
// of four-byte units; values that are not scalar values decode as U+FFFD.
func Decode(content []byte, enc Encoding) ([]uint32, error) {
	content = StripBOM(content, enc)

	if enc == UTF8 {
		return decodeUTF8(content)
	}

	if len(content)%4 != 0 {
		return nil, &DecodeError{Encoding: enc, Offset: len(content) - len(content)%4, Err: ErrTruncated}
	}

	text, err := body(enc).NewDecoder().Bytes(content)
	if err != nil {
		return nil, &DecodeError{Encoding: enc, Err: err}
	}
	return decodeUTF8(text)
}

// DecodeAuto decodes content using the encoding named by its byte-order mark.
func DecodeAuto(content []byte) ([]uint32, Encoding, error) {
	enc := Detect(content)
	cps, err := Decode(content, enc)
	return cps, enc, err
}

func decodeUTF8(content []byte) ([]uint32, error) {
	cps := make([]uint32, 0, utf8.RuneCount(content))
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &DecodeError{Encoding: UTF8, Offset: i, Err: ErrInvalidUTF8}
		}
		cps = append(cps, uint32(r))
		i += size
	}
	return cps, nil
}
