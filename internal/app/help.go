package app

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// helpEntry is one row of the help table.
type helpEntry struct {
	syntax      string
	description string
}

var helpEntries = []helpEntry{
	{"text", "append the code points of text (escapes: \\  \\n \\t \\\\ \\.)"},
	{".N", "append the decimal code point N"},
	{".iP .N", "insert code point N at position P"},
	{".iP text", "insert text at position P"},
	{".mP N", "replace the code point at position P with N"},
	{".k P", "remove the code point at position P"},
	{".e", "erase the buffer"},
	{".c / .d", "compose (NFC) / decompose (NFD) the buffer"},
	{".p / .px", "print code points in decimal / hex"},
	{".v", "report whether the buffer is valid Unicode"},
	{".r[32[le]]", "render the buffer as UTF-8, UTF-32 or UTF-32LE"},
	{".w[32[le]] path", "write the buffer to path"},
	{".o path", "replace the buffer with the contents of path"},
	{".h / .?", "show this help"},
	{".q", "quit"},
}

// helpFooter explains position tokens.
const helpFooter = "Positions P are decimal, or hex with an x or 0x prefix (.ix1F, .k 0x1F)."

// HelpText returns the command reference shown by the help command.
func HelpText() string {
	width := 0
	for _, e := range helpEntries {
		width = max(width, runewidth.StringWidth(e.syntax))
	}

	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, e := range helpEntries {
		sb.WriteString("  ")
		sb.WriteString(runewidth.FillRight(e.syntax, width))
		sb.WriteString("  ")
		sb.WriteString(e.description)
		sb.WriteString("\n")
	}
	sb.WriteString(helpFooter)
	sb.WriteString("\n")
	return sb.String()
}
