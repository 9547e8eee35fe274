package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Color is one of the eight basic ANSI colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Reset clears every SGR attribute.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

func (c Color) String() string {
	if c < Black || c > White {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor resolves a case-insensitive color name such as "cyan".
func ParseColor(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == want {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q (want one of %s)", name, strings.Join(ColorNames(), ", "))
}

// ColorNames lists the accepted color names in sorted order.
func ColorNames() []string {
	names := append([]string(nil), colorNames[:]...)
	sort.Strings(names)
	return names
}

// Foreground returns the opening escape sequence that sets c as the
// foreground color. It is used by message decoration templates, which
// switch colors mid-string without resetting in between.
func Foreground(c Color) string {
	return termenv.CSI + termenv.ANSIColor(c).Sequence(false) + "m"
}

// Colorize wraps text in a foreground color followed by a reset.
func Colorize(text string, fg Color) string {
	return termenv.String(text).Foreground(termenv.ANSIColor(fg)).String()
}

// ColorizeBackground wraps text in a bright background color.
func ColorizeBackground(text string, bg Color) string {
	return termenv.String(text).Background(bright(bg)).String()
}

// ColorizePair wraps text in a foreground and bright background color.
func ColorizePair(text string, fg, bg Color) string {
	return termenv.String(text).
		Foreground(termenv.ANSIColor(fg)).
		Background(bright(bg)).
		String()
}

// Strip removes every ANSI escape sequence from s. Stripping an already
// plain string returns it unchanged.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansi.Strip(s)
}

func bright(c Color) termenv.ANSIColor {
	return termenv.ANSIColor(c + 8)
}
