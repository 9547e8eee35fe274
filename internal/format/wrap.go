package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// NoWrap is the width reported by sinks that are not terminals.
const NoWrap = -1

const tabWidth = 4

// Wrap breaks message into chunks of width-headerSize columns, joined by a
// newline and headerSize spaces. Escape sequences take no columns. Wrapping
// is skipped when width is NoWrap or leaves no room after the header.
func Wrap(message string, width, headerSize int) string {
	message = strings.ReplaceAll(message, "\t", strings.Repeat(" ", tabWidth))
	area := width - headerSize
	if width < 0 || area < 1 {
		return message
	}
	wrapped := ansi.Hardwrap(message, area, true)
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", headerSize))
}
