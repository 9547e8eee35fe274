// Package palette owns the terminal colors pidcat renders with.
//
// # Overview
//
// Output uses the eight basic ANSI colors only. Foregrounds map to SGR
// 30-37 and backgrounds to the bright range 100-107, which keeps bars and
// level badges readable on both dark and light terminals. The escape
// sequences come from termenv so they match what the rest of the charm
// stack emits; stripping them again is delegated to x/ansi.
//
// # Allocator
//
// Allocator hands out colors to tags, package names and pids. A fixed table
// of well-known system tags always renders in white, cyan or yellow. Every
// other name takes the color at the front of a six-slot recency list, and
// each lookup moves the resolved color to the back of that list:
//
//	recency: [red green yellow blue magenta cyan]
//	ColorFor("A") -> red      recency: [green yellow blue magenta cyan red]
//	ColorFor("B") -> green    recency: [yellow blue magenta cyan red green]
//	ColorFor("A") -> red      recency: [yellow blue magenta cyan green red]
//
// Names are never forgotten, but once six other colors have been used since
// a name was last looked up its color is handed to the next new name, so two
// unrelated tags can end up sharing a color. Color is a hint, not an identity.
//
// An Allocator is not safe for concurrent use. The stream loop owns exactly
// one for the whole run.
package palette
