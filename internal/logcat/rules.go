package logcat

import (
	"regexp"

	"github.com/abdalmoniem/pidcat/internal/palette"
)

// Rule rewrites a message body for display. Template uses regexp
// expansion syntax (${1}) and may embed escape sequences.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Template string
}

// Apply returns message with every match of the rule expanded.
func (r Rule) Apply(message string) string {
	return r.Pattern.ReplaceAllString(message, r.Template)
}

var (
	strictModeRe = regexp.MustCompile(`^(StrictMode policy violation)(; ~duration=)(\d+ ms)`)
	gcRe         = regexp.MustCompile(`^(GC_(?:CONCURRENT|FOR_M?ALLOC|EXTERNAL_ALLOC|EXPLICIT) )(freed <?\d+.)(, \d+% free \d+./\d+., )(paused \d+ms(?:\+\d+ms)?)`)
)

// StrictModeRule highlights the duration of a StrictMode policy violation.
func StrictModeRule() Rule {
	return Rule{
		Name:     "strictmode",
		Pattern:  strictModeRe,
		Template: "${1}" + palette.Foreground(palette.Red) + "${2}" + palette.Foreground(palette.Yellow) + "${3}" + palette.Reset,
	}
}

// GCRule highlights the freed and paused fields of dalvik GC statistics.
func GCRule() Rule {
	return Rule{
		Name:     "gc",
		Pattern:  gcRe,
		Template: "${1}" + palette.Foreground(palette.Green) + "${2}" + palette.Reset + "${3}" + palette.Foreground(palette.Yellow) + "${4}" + palette.Reset,
	}
}

// DefaultRules returns the decoration rules in application order.
func DefaultRules(colorGC bool) []Rule {
	rules := []Rule{StrictModeRule()}
	if colorGC {
		rules = append(rules, GCRule())
	}
	return rules
}

// Decorate applies rules to message in order.
func Decorate(message string, rules []Rule) string {
	for _, r := range rules {
		message = r.Apply(message)
	}
	return message
}
