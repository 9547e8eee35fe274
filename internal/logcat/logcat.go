package logcat

import (
	"regexp"
	"strings"
)

// Levels lists the severities in ascending order.
const Levels = "VDIWEF"

// ActivityManagerTag is the tag process deaths are logged under.
const ActivityManagerTag = "ActivityManager"

// BacktraceTag is the tag native crash backtraces are logged under.
const BacktraceTag = "DEBUG"

const nativeTagsMarker = "nativeGetEnabledTags"

var (
	logLineRe   = regexp.MustCompile(`^([A-Z])/(.+?)\( *(\d+)\): (.*?)$`)
	backtraceRe = regexp.MustCompile(`^#(.*?)pc\s(.*?)$`)
)

var systemTags = map[string]bool{
	"dalvikvm":        true,
	"Process":         true,
	"ActivityManager": true,
	"ActivityThread":  true,
	"AndroidRuntime":  true,
	"jdwp":            true,
	"StrictMode":      true,
	"DEBUG":           true,
}

// IsSystemTag reports whether tag belongs to the framework rather than the
// app.
func IsSystemTag(tag string) bool {
	return systemTags[tag]
}

// Record is one classified log line.
type Record struct {
	Level   string
	Tag     string
	PID     string
	Message string
}

// LevelIndex returns the position of level in Levels. ok is false for
// letters logcat may emit that are not part of the known set.
func LevelIndex(level string) (idx int, ok bool) {
	if len(level) != 1 {
		return 0, false
	}
	idx = strings.IndexByte(Levels, strings.ToUpper(level)[0])
	return idx, idx >= 0
}

// IsNoise reports whether line is the nativeGetEnabledTags diagnostic that
// is discarded before any other processing.
func IsNoise(line string) bool {
	return strings.Contains(line, nativeTagsMarker)
}

// Parse classifies line as a main log record.
func Parse(line string) (Record, bool) {
	m := logLineRe.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	return Record{
		Level:   m[1],
		Tag:     strings.TrimSpace(m[2]),
		PID:     m[3],
		Message: m[4],
	}, true
}

// IsBacktrace reports whether message is a native backtrace frame such as
// "#00  pc 000123ab  /system/lib/libc.so". Leading whitespace is ignored.
func IsBacktrace(message string) bool {
	return backtraceRe.MatchString(strings.TrimLeft(message, " \t"))
}
