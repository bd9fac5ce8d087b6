package command

// scanner walks a line byte by byte with explicit position tracking.
// The grammar's structural characters are all ASCII, so byte steps never
// split a multi-byte character that the parser needs to interpret.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// eof reports whether the whole input has been consumed.
func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the byte at the cursor without consuming it, or 0 at EOF.
func (s *scanner) peek() byte {
	return s.peekAt(0)
}

// peekAt returns the byte n positions past the cursor, or 0 past EOF.
func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

// next consumes and returns one byte, or 0 at EOF.
func (s *scanner) next() byte {
	if s.eof() {
		return 0
	}
	c := s.src[s.pos]
	s.pos++
	return c
}

// accept consumes c if it is the next byte.
func (s *scanner) accept(c byte) bool {
	if s.peek() != c || s.eof() {
		return false
	}
	s.pos++
	return true
}

// acceptFold consumes lit if the input continues with it, ignoring ASCII case.
func (s *scanner) acceptFold(lit string) bool {
	if len(s.src)-s.pos < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if lower(s.src[s.pos+i]) != lower(lit[i]) {
			return false
		}
	}
	s.pos += len(lit)
	return true
}

// rest returns the unconsumed input and moves the cursor to EOF.
func (s *scanner) rest() string {
	r := s.src[s.pos:]
	s.pos = len(s.src)
	return r
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
