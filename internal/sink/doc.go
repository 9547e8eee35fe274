// Package sink delivers rendered blocks to their destinations.
//
// A Sink reports its own width and whether it accepts color. Fanout renders
// each Block once per sink at that sink's width and strips escapes for sinks
// without color, so a terminal and a log file can share one color
// allocation.
//
// When a sink fails to write, Fanout closes it, logs a warning and keeps
// going with the rest. Output only fails once no sink remains.
package sink
