package logcat

import "regexp"

// StartVariant identifies which layout a process start was logged in.
type StartVariant int

const (
	// StartLegacy is "Start proc <pid>:<pkg>/<user> for <target>".
	StartLegacy StartVariant = iota
	// StartUIDGID is "Start proc <pkg> for <target>: pid=<pid> uid=<uid> gids=<gids>".
	StartUIDGID
	// StartDalvik is the dalvikvm ">>>>> <pkg> [ userId:0 | appId:<uid> ]" banner.
	StartDalvik
)

func (v StartVariant) String() string {
	switch v {
	case StartLegacy:
		return "legacy"
	case StartUIDGID:
		return "uid/gid"
	case StartDalvik:
		return "dalvik"
	default:
		return "unknown"
	}
}

// DeathVariant identifies which layout a process death was logged in.
type DeathVariant int

const (
	// DeathKill is "Killing <pid>:<pkg>/<user>: <reason>".
	DeathKill DeathVariant = iota
	// DeathLeave is "No longer want <pkg> (pid <pid>): <reason>".
	DeathLeave
	// DeathDied is "Process <pkg> (pid <pid>) has died".
	DeathDied
)

func (v DeathVariant) String() string {
	switch v {
	case DeathKill:
		return "kill"
	case DeathLeave:
		return "leave"
	case DeathDied:
		return "death"
	default:
		return "unknown"
	}
}

// ProcessStart is the normalized form of every start layout. Fields the
// layout does not carry are empty.
type ProcessStart struct {
	Variant StartVariant
	PID     string
	UID     string
	GIDs    string
	Package string
	Target  string
}

// ProcessDeath is the normalized form of every death layout.
type ProcessDeath struct {
	Variant DeathVariant
	PID     string
	Package string
}

type startPattern struct {
	variant StartVariant
	re      *regexp.Regexp
}

type deathPattern struct {
	variant DeathVariant
	re      *regexp.Regexp
}

// Tried in order; the first match wins.
var startPatterns = []startPattern{
	{StartLegacy, regexp.MustCompile(`^.*: Start proc (?P<pid>\d+):(?P<pkg>[a-zA-Z0-9._:]+)/[a-z0-9]+ for (?P<target>.*)$`)},
	{StartUIDGID, regexp.MustCompile(`^.*: Start proc (?P<pkg>[a-zA-Z0-9._:]+) for (?P<target>[a-z]+ [^:]+): pid=(?P<pid>\d+) uid=(?P<uid>\d+) gids=(?P<gids>.*)$`)},
	{StartDalvik, regexp.MustCompile(`^E/dalvikvm\(\s*(?P<pid>\d+)\): >>>>> (?P<pkg>[a-zA-Z0-9._:]+) \[ userId:0 \| appId:(?P<uid>\d+) \]$`)},
}

// Tried in order against the message body; the first match wins.
var deathPatterns = []deathPattern{
	{DeathKill, regexp.MustCompile(`^Killing (?P<pid>\d+):(?P<pkg>[a-zA-Z0-9._:]+)/[^:]+: (.*)$`)},
	{DeathLeave, regexp.MustCompile(`^No longer want (?P<pkg>[a-zA-Z0-9._:]+) \(pid (?P<pid>\d+)\): .*$`)},
	{DeathDied, regexp.MustCompile(`^Process (?P<pkg>[a-zA-Z0-9._:]+) \(pid (?P<pid>\d+)\) has died.?$`)},
}

// ParseStart recognizes a process start anywhere in the raw line.
func ParseStart(line string) (ProcessStart, bool) {
	for _, p := range startPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return ProcessStart{
			Variant: p.variant,
			PID:     named(p.re, m, "pid"),
			UID:     named(p.re, m, "uid"),
			GIDs:    named(p.re, m, "gids"),
			Package: named(p.re, m, "pkg"),
			Target:  named(p.re, m, "target"),
		}, true
	}
	return ProcessStart{}, false
}

// ParseDeath recognizes a process death in the message body of a line
// logged under tag. Only ActivityManager reports deaths.
func ParseDeath(tag, message string) (ProcessDeath, bool) {
	if tag != ActivityManagerTag {
		return ProcessDeath{}, false
	}
	for _, p := range deathPatterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		return ProcessDeath{
			Variant: p.variant,
			PID:     named(p.re, m, "pid"),
			Package: named(p.re, m, "pkg"),
		}, true
	}
	return ProcessDeath{}, false
}

func named(re *regexp.Regexp, match []string, name string) string {
	if i := re.SubexpIndex(name); i > 0 && i < len(match) {
		return match[i]
	}
	return ""
}
