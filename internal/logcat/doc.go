// Package logcat recognizes the line shapes produced by `adb logcat -v brief`.
//
// # Overview
//
// Every recognizer here is a pure function over a single line. Nothing in
// this package keeps state; the stream loop decides what to do with a match.
//
// The main shape is
//
//	I/ActivityManager( 1234): Start proc 1234:com.example.app/u0a123 for activity ...
//	^ ^               ^       ^
//	| tag             pid     message
//	level
//
// Lines that do not have it are dropped by the caller. The same raw line is
// also offered to the process-start recognizers, so a single line can be an
// ordinary record and a process-start event at once.
//
// # Variant families
//
// Process starts and process deaths have been logged in several layouts
// across Android releases. Each family is an ordered list of patterns and
// the first match wins. Patterns name their captures (pid, pkg, uid, gids,
// target) and the normalizer reads them by name, so a layout that moves
// the pid before or after the package needs no index bookkeeping.
//
// # Decoration
//
// Rule values rewrite a message body for display only, for example
// highlighting the duration of a StrictMode violation. Rules are data so
// new ones can be appended without touching the formatter.
package logcat
