// Package tui is the interactive viewer behind --tui.
//
// The viewer is an output sink like the console: the stream loop renders
// each block at the viewport width and the Sink forwards the resulting lines
// to the Bubble Tea program with Program.Send, which blocks until the event
// loop accepts them. The program keeps the newest lines (5000 by default)
// in a scrollable viewport.
//
// # Keys
//
//	f          toggle follow (stick to the newest line)
//	/          search (case-insensitive regex over the uncolored text)
//	n, N       next / previous match
//	esc        clear the search
//	g, G       top / bottom
//	j, k       scroll
//	q, ctrl+c  quit
//
// The status line shows the buffer size and the stream.Stats counters, and
// reports when the stream has ended.
package tui
