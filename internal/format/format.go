package format

import (
	"fmt"
	"strings"

	"github.com/abdalmoniem/pidcat/internal/logcat"
	"github.com/abdalmoniem/pidcat/internal/palette"
)

// levelWidth covers the " X " badge plus its trailing space.
const levelWidth = 4

// unknownPackage keys the color of lines whose pid is not tracked.
const unknownPackage = "unknown"

// Layout holds the column configuration.
type Layout struct {
	ShowPID        bool
	PIDWidth       int
	ShowPackage    bool
	PackageWidth   int
	TagWidth       int
	AlwaysShowTags bool
}

// HeaderSize returns the number of columns in front of the message.
func (l Layout) HeaderSize() int {
	size := levelWidth
	if l.ShowPID {
		size += l.PIDWidth + 2
	}
	if l.ShowPackage {
		size += l.PackageWidth + 2
	}
	if l.TagWidth > 0 {
		size += l.TagWidth + 1
	}
	return size
}

type levelColors struct {
	fg, bg palette.Color
}

var levels = map[string]levelColors{
	"V": {palette.White, palette.Black},
	"D": {palette.Black, palette.Blue},
	"I": {palette.Black, palette.Green},
	"W": {palette.Black, palette.Yellow},
	"E": {palette.Black, palette.Red},
	"F": {palette.Black, palette.Red},
}

// Entry is an accepted record ready for rendering.
type Entry struct {
	Record logcat.Record
	// Owner is the pid the line is attributed to. It differs from
	// Record.PID for re-attributed backtrace frames and may be empty when no
	// app pid is known yet.
	Owner   string
	Package string
	Known   bool
	ShowTag bool
}

// Formatter builds Blocks. It is not safe for concurrent use.
type Formatter struct {
	layout Layout
	colors *palette.Allocator
	rules  []logcat.Rule
}

// New creates a formatter sharing colors with the rest of the run.
func New(layout Layout, colors *palette.Allocator, rules []logcat.Rule) *Formatter {
	return &Formatter{layout: layout, colors: colors, rules: rules}
}

// Layout returns the column configuration.
func (f *Formatter) Layout() Layout {
	return f.layout
}

// HeaderSize is shorthand for Layout().HeaderSize().
func (f *Formatter) HeaderSize() int {
	return f.layout.HeaderSize()
}

// ShouldShowTag reports whether the tag column is filled for tag given the
// last rendered tag.
func (f *Formatter) ShouldShowTag(tag, last string, hasLast bool) bool {
	return f.layout.AlwaysShowTags || !hasLast || tag != last
}

// Line renders the header and decorated message of an entry.
func (f *Formatter) Line(e Entry) Block {
	var header strings.Builder
	l := f.layout

	if l.ShowPID {
		if e.Owner == "" {
			header.WriteString(strings.Repeat(" ", l.PIDWidth))
		} else {
			pid := padRight(truncate(e.Owner, l.PIDWidth), l.PIDWidth)
			header.WriteString(palette.Colorize(pid, f.colors.ColorFor(e.Owner)))
		}
		header.WriteString("  ")
	}

	if l.ShowPackage {
		name, key := e.Package, e.Package
		if !e.Known {
			key = unknownPackage
			name = unknownPackage
			if e.Owner != "" {
				name = fmt.Sprintf("%s(%s)", unknownPackage, e.Owner)
			}
		}
		pkg := padRight(truncate(name, l.PackageWidth), l.PackageWidth)
		header.WriteString(palette.Colorize(pkg, f.colors.ColorFor(key)))
		header.WriteString("  ")
	}

	if l.TagWidth > 0 {
		if e.ShowTag {
			tag := truncate(e.Record.Tag, l.TagWidth)
			if l.ShowPackage {
				tag = padLeft(tag, l.TagWidth)
			} else {
				tag = padRight(tag, l.TagWidth)
			}
			header.WriteString(palette.Colorize(tag, f.colors.ColorFor(e.Record.Tag)))
		} else {
			header.WriteString(strings.Repeat(" ", l.TagWidth))
		}
		header.WriteByte(' ')
	}

	header.WriteString(levelBadge(e.Record.Level))
	header.WriteByte(' ')

	return Block{lines: []blockLine{{
		prefix: header.String(),
		indent: l.HeaderSize(),
		text:   logcat.Decorate(e.Record.Message, f.rules),
	}}}
}

// StartBanner announces a tracked process start.
func (f *Formatter) StartBanner(ev logcat.ProcessStart) Block {
	bar := f.bar(palette.White)
	size := f.HeaderSize()
	return Block{lines: []blockLine{
		{},
		{prefix: bar, indent: size, text: fmt.Sprintf("Process %s created for %s", ev.Package, ev.Target)},
		{prefix: bar, indent: size, text: fmt.Sprintf("PID: %s   UID: %s   GIDs: %s", ev.PID, ev.UID, ev.GIDs)},
		{},
	}}
}

// EndBanner announces the end of a tracked process.
func (f *Formatter) EndBanner(ev logcat.ProcessDeath) Block {
	return Block{lines: []blockLine{
		{},
		{prefix: f.bar(palette.Red), indent: f.HeaderSize(), text: fmt.Sprintf("Process %s (PID: %s) ended", ev.Package, ev.PID)},
		{},
	}}
}

// bar is a colored run of headerSize-1 cells plus the separating space.
func (f *Formatter) bar(bg palette.Color) string {
	return palette.ColorizeBackground(strings.Repeat(" ", f.HeaderSize()-1), bg) + " "
}

func levelBadge(level string) string {
	c, ok := levels[level]
	if !ok {
		c = levelColors{palette.White, palette.Black}
	}
	return palette.ColorizePair(" "+level+" ", c.fg, c.bg)
}
