package format

import "strings"

// truncate shortens value to limit characters, ending with an ellipsis when
// there is room for one. A zero-width column holds nothing.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

func padRight(value string, width int) string {
	if n := width - utf8Len(value); n > 0 {
		return value + strings.Repeat(" ", n)
	}
	return value
}

func padLeft(value string, width int) string {
	if n := width - utf8Len(value); n > 0 {
		return strings.Repeat(" ", n) + value
	}
	return value
}

func utf8Len(s string) int {
	return len([]rune(s))
}
