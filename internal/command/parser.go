package command

import (
	"strconv"
	"strings"

	"github.com/PaprikaX33/Uniedit/internal/codec"
)

// Parse turns one input line into a Command.
// It returns false when the line is not a recognized command; the caller
// reports that as unknown input and nothing else happens.
func Parse(line string) (Command, bool) {
	trimmed := strings.TrimSpace(line)

	if rest, ok := strings.CutPrefix(trimmed, "."); ok {
		return parseDot(rest)
	}

	text, ok := parseRaw(trimmed)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindAppendText, Text: text}, true
}

// parseDot dispatches on the selector letter. The letter alone decides the
// grammar of the rest of the line; there is no backtracking to another
// selector.
func parseDot(src string) (Command, bool) {
	s := newScanner(src)

	switch lower(s.next()) {
	case 'q':
		return noArgument(s, KindQuit)
	case 'h', '?':
		return noArgument(s, KindHelp)
	case 'c':
		return noArgument(s, KindCompress)
	case 'd':
		return noArgument(s, KindDecompress)
	case 'e':
		return noArgument(s, KindErase)
	case 'v':
		return noArgument(s, KindValid)
	case 'k':
		return parseKill(s)
	case 'p':
		return parsePrint(s)
	case 'r':
		return parseRender(s)
	case 'w':
		return parseWrite(s)
	case 'o':
		return parseRead(s)
	case 'i':
		return parseInsert(s)
	case 'm':
		return parseModify(s)
	default:
		v, ok := parseDecimal(src)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: KindAppendLiteral, Value: v}, true
	}
}

// noArgument accepts the command only if nothing follows the selector.
func noArgument(s *scanner, kind Kind) (Command, bool) {
	if !s.eof() {
		return Command{}, false
	}
	return Command{Kind: kind}, true
}

func parseKill(s *scanner) (Command, bool) {
	if !s.accept(' ') {
		return Command{}, false
	}
	pos, ok := parsePosition(s)
	if !ok || !s.eof() {
		return Command{}, false
	}
	return Command{Kind: KindKill, Pos: pos}, true
}

func parsePrint(s *scanner) (Command, bool) {
	base := Decimal
	if s.acceptFold("x") {
		base = Hex
	}
	if !s.eof() {
		return Command{}, false
	}
	return Command{Kind: KindPrint, Base: base}, true
}

func parseRender(s *scanner) (Command, bool) {
	enc := parseEncoding(s)
	if !s.eof() {
		return Command{}, false
	}
	return Command{Kind: KindRender, Encoding: enc}, true
}

func parseWrite(s *scanner) (Command, bool) {
	enc := parseEncoding(s)
	path, ok := parsePath(s)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindWrite, Encoding: enc, Path: path}, true
}

func parseRead(s *scanner) (Command, bool) {
	path, ok := parsePath(s)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindRead, Path: path}, true
}

func parseInsert(s *scanner) (Command, bool) {
	pos, ok := parsePosition(s)
	if !ok || !s.accept(' ') {
		return Command{}, false
	}

	payload := s.rest()
	if literal, isLiteral := strings.CutPrefix(payload, "."); isLiteral {
		v, ok := parseDecimal(literal)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: KindInsertLiteral, Pos: pos, Value: v}, true
	}

	text, ok := parseRaw(payload)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindInsertText, Pos: pos, Text: text}, true
}

func parseModify(s *scanner) (Command, bool) {
	pos, ok := parsePosition(s)
	if !ok || !s.accept(' ') {
		return Command{}, false
	}

	s.accept('.')
	v, ok := parseDecimal(s.rest())
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindModify, Pos: pos, Value: v}, true
}

// parseEncoding consumes the optional "32" and "le" suffixes shared by
// render and write.
func parseEncoding(s *scanner) codec.Encoding {
	if !s.acceptFold("32") {
		return codec.UTF8
	}
	if s.acceptFold("le") {
		return codec.UTF32LE
	}
	return codec.UTF32BE
}

// parsePath requires exactly one space and takes the rest of the line
// verbatim as the path.
func parsePath(s *scanner) (string, bool) {
	if !s.accept(' ') {
		return "", false
	}
	path := s.rest()
	if path == "" {
		return "", false
	}
	return path, true
}

// parsePosition reads a position token: decimal digits, or hex digits after
// an "x" or "0x" prefix. The digit run ends at the first byte outside its
// digit class; the caller decides what may follow.
func parsePosition(s *scanner) (uint32, bool) {
	base, isDigit := 10, isDecimalDigit
	switch {
	case s.peek() == '0' && s.peekAt(1) == 'x':
		s.pos += 2
		base, isDigit = 16, isHexDigit
	case s.peek() == 'x':
		s.pos++
		base, isDigit = 16, isHexDigit
	}

	start := s.pos
	for !s.eof() && isDigit(s.peek()) {
		s.pos++
	}

	digits := s.src[start:s.pos]
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// parseDecimal parses s as a whole unsigned decimal that fits in 32 bits.
func parseDecimal(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDecimalDigit(s[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
