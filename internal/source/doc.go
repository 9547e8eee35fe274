// Package source produces log lines for the stream loop.
//
// Every Source reads its upstream in a background goroutine and hands lines
// over through a bounded channel, so a slow consumer blocks the reader
// instead of growing memory. Lines are decoded as UTF-8 (invalid bytes
// become U+FFFD) and trimmed of surrounding whitespace before delivery.
//
// NextLine returns io.EOF once the upstream is exhausted and every queued
// line has been delivered. A ProcessSource whose child exits non-zero
// returns an error wrapping ErrExited instead.
package source
