// Package tracker keeps the live pid -> package map and decides which
// processes the user asked to see.
//
// Filter terms come from the package arguments. A bare term such as
// "com.example.app" is a catch-all: it matches the main process and every
// secondary process ("com.example.app:remote"). A term containing ':' is a
// named process and matches exactly; a trailing ':' selects the main
// process alone ("com.example.app:").
//
// The map only ever grows from process-start events (and the startup ps
// snapshot) that pass the filter, and shrinks on matching death events.
package tracker
