package command

// escapes maps the character after a backslash to the code point it stands for.
var escapes = map[rune]uint32{
	' ':  ' ',
	'n':  '\n',
	't':  '\t',
	'\\': '\\',
	'.':  '.',
}

// parseRaw converts raw text to code points, applying backslash escapes.
// An unknown escape or a trailing lone backslash rejects the whole text.
func parseRaw(src string) ([]uint32, bool) {
	text := make([]uint32, 0, len(src))
	escaped := false

	for _, r := range src {
		if escaped {
			v, ok := escapes[r]
			if !ok {
				return nil, false
			}
			text = append(text, v)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		text = append(text, uint32(r))
	}

	if escaped {
		return nil, false
	}
	return text, true
}
