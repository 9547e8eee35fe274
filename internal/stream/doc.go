// Package stream drives the per-line state machine.
//
// # Overview
//
// Loop pulls lines from a source.Source one at a time and, for each line:
//
//  1. drops nativeGetEnabledTags noise,
//  2. classifies the main log record (unrecognized lines are ignored),
//  3. checks the raw line for a process start and the record for a process
//     death, updating the tracker and emitting banners for filtered
//     processes,
//  4. applies the ordinary gate: ownership, minimum level, the tag deny and
//     allow lists and the system-tag switch,
//  5. re-attributes native backtrace frames to the current app pid,
//  6. formats the line and hands it to the output.
//
// A line can both announce a process and be displayed itself; the banner is
// always written first.
//
// # State
//
// State and the color allocator inside the formatter are owned by the loop
// goroutine. Stats is the only value shared with other goroutines and is
// guarded by its own lock, in the same snapshot style the viewer reads it.
//
// # Termination
//
// End of input flushes the output and returns nil. Cancellation also returns
// nil after flushing. Any other upstream failure is returned wrapped.
package stream
