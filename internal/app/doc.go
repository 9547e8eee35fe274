// Package app wires a pidcat run together: it resolves the packages to
// follow, seeds the pid map from a process snapshot, chooses the line source
// and the output sinks, and drives the stream loop until the input ends or
// the context is cancelled.
//
// # Sources
//
//   - --file PATH reads a saved capture (with --tail N, only its last N lines)
//   - a non-terminal stdin is read as piped logcat output
//   - otherwise adb logcat is started, after clearing the device buffer
//     unless --keep is given
//
// The ps snapshot is taken for every source except --file, and a failure
// only produces a warning.
//
// # Sinks
//
// The console receives output unless --tui replaces it with the viewer.
// --output adds an appending plain-text file sink alongside either.
package app
