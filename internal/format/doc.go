// Package format renders classified log records as fixed-column display
// lines.
//
// # Layout
//
// Every rendered line starts with a header made of up to four columns:
//
//	[pid  ][package  ][tag ] X  message
//
// The pid and package columns are optional. The tag column is present
// whenever its width is positive, and is left blank when the tag repeats the
// previous line's tag. The level badge is always three cells wide followed
// by a space. HeaderSize reports the sum of the columns in use so
// continuation lines can be indented underneath the message.
//
// # Blocks
//
// Colors are allocated once per accepted line, when the Block is built.
// Block.Render is then called once per sink with that sink's width so a
// terminal and a log file can receive differently wrapped text from the same
// allocation. Sinks that do not want color strip the escapes afterwards.
//
// # Wrapping
//
// Wrap expands tabs to four spaces and breaks the message greedily every
// width-headerSize columns. Escape sequences occupy no columns.
// A width of -1 (no terminal) disables wrapping.
package format
