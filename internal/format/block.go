package format

import "strings"

type blockLine struct {
	prefix string
	indent int
	text   string
}

// Block is a rendered unit: one log line, or a banner spanning several
// lines. The zero Block renders as an empty string.
type Block struct {
	lines []blockLine
}

// Render wraps the block for a sink of the given width. The result has no
// trailing newline.
func (b Block) Render(width int) string {
	var out strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		if l.prefix == "" && l.text == "" {
			continue
		}
		out.WriteString(l.prefix)
		out.WriteString(Wrap(l.text, width, l.indent))
	}
	return out.String()
}
