// Package config loads pidcat's optional TOML defaults and turns the merged
// options into the matchers the stream loop runs with.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. an explicit path (the --config flag)
//  2. the PIDCAT_CONFIG environment variable
//  3. ~/.config/pidcat/config.toml
//
// A missing file is not an error; Defaults are used. Command line flags are
// applied by the caller on top of the loaded Options, and only for flags the
// user actually set.
//
// # TOML Format
//
//	tag_width = 24
//	package_width = 30
//	pid_width = 6
//	min_level = "I"
//	show_package = true
//	show_pid = false
//	always_display_tags = false
//	color_gc = true
//	no_color = false
//	ignore_system_tags = false
//	tags = ["MyApp", "Net.*"]
//	ignored_tags = ["chatty"]
//	adb_path = "~/Android/Sdk/platform-tools/adb"
//	output = "~/logs/pidcat.log"
//
//	[known_tags]
//	OkHttp = "magenta"
//	MyApp = "green"
//
// Every field is optional. Tilde expansion applies to the config path and to
// output.
//
// # Compilation
//
// Options.Compile validates the options, compiles tag terms (an invalid
// pattern is a startup error), resolves known tag colors and splits the
// package arguments into a tracker.Filter. With no packages the run falls
// back to showing every process.
package config
