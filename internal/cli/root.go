// Package cli defines the pidcat command line.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abdalmoniem/pidcat/internal/config"
)

// Version is reported by --version.
const Version = "2.5.1"

// RunFunc executes a run with the merged options.
type RunFunc func(ctx context.Context, opts config.Options) error

// NewRootCommand builds the pidcat command. run receives the config file
// values overlaid with every flag given on the command line.
func NewRootCommand(run RunFunc) *cobra.Command {
	var (
		flagVals   config.Options
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "pidcat [package ...]",
		Short:         "Filter logcat by package name and colorize output",
		Long:          `pidcat follows the log output of one or more Android packages, tracking their processes as they start and die, and prints each line in aligned, colored columns.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			overlay(cmd.Flags(), &opts, flagVals)
			if len(args) > 0 {
				opts.Packages = args
			}
			return run(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	f := cmd.Flags()
	f.SortFlags = false
	f.IntVarP(&flagVals.TagWidth, "tag-width", "m", config.DefaultTagWidth, "width of log tag")
	f.IntVarP(&flagVals.PackageWidth, "package-width", "n", config.DefaultPackageWidth, "width of package/process name column")
	f.IntVar(&flagVals.PIDWidth, "pid-width", config.DefaultPIDWidth, "width of pid column")
	f.StringVarP(&flagVals.MinLevel, "min-level", "l", config.DefaultMinLevel, "minimum level to be displayed (V, D, I, W, E, F)")
	f.BoolVarP(&flagVals.ShowPackage, "show-package", "p", false, "show package/process name of each log message")
	f.BoolVarP(&flagVals.ShowPID, "show-pid", "P", false, "show the pid of each log message")
	f.StringVarP(&flagVals.Serial, "serial", "s", "", "device serial number (adb -s option)")
	f.BoolVarP(&flagVals.Device, "device", "d", false, "use first device for log input (adb -d option)")
	f.BoolVarP(&flagVals.Emulator, "emulator", "e", false, "use first emulator for log input (adb -e option)")
	f.BoolVarP(&flagVals.KeepLog, "keep", "k", false, "keep the entire log before running")
	f.StringArrayVarP(&flagVals.Tags, "tag", "t", nil, "filter output by specified tag(s)")
	f.StringArrayVarP(&flagVals.IgnoredTags, "ignore-tag", "i", nil, "filter output by ignoring specified tag(s)")
	f.BoolVarP(&flagVals.All, "all", "a", false, "print all log messages (disables package filter)")
	f.StringVarP(&flagVals.Output, "output", "o", "", "also append plain output to this file")
	f.StringVarP(&flagVals.Regex, "regex", "r", "", "print only when matches REGEX (passed to logcat -e REGEX)")
	f.BoolVar(&flagVals.ColorGC, "color-gc", false, "color garbage collection")
	f.BoolVar(&flagVals.NoColor, "no-color", false, "disable colors")
	f.BoolVar(&flagVals.AlwaysShowTags, "always-display-tags", false, "always display the tag name")
	f.BoolVar(&flagVals.Current, "current", false, "filter logcat by current running app")
	f.BoolVar(&flagVals.IgnoreSystemTags, "ignore-system-tags", false, "hide lines from framework tags")
	f.StringVar(&configPath, "config", "", "override config file path")
	f.StringVar(&flagVals.InputFile, "file", "", "read a saved log instead of adb")
	f.IntVar(&flagVals.Tail, "tail", 0, "with --file, only replay the last N lines")
	f.BoolVar(&flagVals.TUI, "tui", false, "show output in the interactive viewer")
	f.StringVar(&flagVals.PrefsPath, "prefs", "", "override viewer preferences path")
	f.BoolVar(&flagVals.Verbose, "verbose", false, "enable debug logging")

	return cmd
}

// overlay copies each explicitly set flag from src onto dst so config file
// values survive for flags left at their defaults.
func overlay(flags *pflag.FlagSet, dst *config.Options, src config.Options) {
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("tag-width", func() { dst.TagWidth = src.TagWidth })
	set("package-width", func() { dst.PackageWidth = src.PackageWidth })
	set("pid-width", func() { dst.PIDWidth = src.PIDWidth })
	set("min-level", func() { dst.MinLevel = strings.ToUpper(strings.TrimSpace(src.MinLevel)) })
	set("show-package", func() { dst.ShowPackage = src.ShowPackage })
	set("show-pid", func() { dst.ShowPID = src.ShowPID })
	set("serial", func() { dst.Serial = src.Serial })
	set("device", func() { dst.Device = src.Device })
	set("emulator", func() { dst.Emulator = src.Emulator })
	set("keep", func() { dst.KeepLog = src.KeepLog })
	set("tag", func() { dst.Tags = config.SplitTerms(src.Tags) })
	set("ignore-tag", func() { dst.IgnoredTags = config.SplitTerms(src.IgnoredTags) })
	set("all", func() { dst.All = src.All })
	set("output", func() { dst.Output = src.Output })
	set("regex", func() { dst.Regex = src.Regex })
	set("color-gc", func() { dst.ColorGC = src.ColorGC })
	set("no-color", func() { dst.NoColor = src.NoColor })
	set("always-display-tags", func() { dst.AlwaysShowTags = src.AlwaysShowTags })
	set("current", func() { dst.Current = src.Current })
	set("ignore-system-tags", func() { dst.IgnoreSystemTags = src.IgnoreSystemTags })
	set("file", func() { dst.InputFile = src.InputFile })
	set("tail", func() { dst.Tail = src.Tail })
	set("tui", func() { dst.TUI = src.TUI })
	set("prefs", func() { dst.PrefsPath = src.PrefsPath })
	set("verbose", func() { dst.Verbose = src.Verbose })
}
