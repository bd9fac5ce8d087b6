// Package command parses uniedit input lines into structured commands.
//
// Every input line is either a dot-command, which starts with '.', or raw
// text to append to the buffer. Parsing is a pure function of the line:
// the parser keeps no state between calls and a rejected line has no
// effect.
//
// # Grammar
//
//	.q .h .? .c .d .e .v       no-argument commands
//	.k <pos>                   kill the code point at pos
//	.p .px                     print the buffer in decimal or hex
//	.r[32[le]]                 render as UTF-8, UTF-32 or UTF-32LE
//	.w[32[le]] <path>          write the encoded buffer to path
//	.o <path>                  replace the buffer with the file at path
//	.i<pos> <text>             insert raw text at pos
//	.i<pos> .<decimal>         insert one code point at pos
//	.m<pos> [.]<decimal>       replace the code point at pos
//	.<decimal>                 append one code point
//	<text>                     append raw text
//
// Selector letters and the "le" suffix are case-insensitive.
//
// # Positions
//
// A position is decimal digits, or hex digits behind an "x" or "0x"
// prefix. A leading zero never selects octal, so "032" is 32. The value
// must fit in 32 bits.
//
// # Raw Text
//
// Raw text appends each character as its code point. A backslash starts an
// escape: "\ " is a space, "\n" a newline, "\t" a tab, "\\" a backslash and
// "\." a dot. Any other escape rejects the whole line.
//
// # Usage
//
//	cmd, ok := command.Parse(line)
//	if !ok {
//	    // unknown command, nothing changes
//	}
package command
