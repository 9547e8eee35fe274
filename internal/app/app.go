package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/abdalmoniem/pidcat/internal/adb"
	"github.com/abdalmoniem/pidcat/internal/config"
	"github.com/abdalmoniem/pidcat/internal/format"
	"github.com/abdalmoniem/pidcat/internal/logcat"
	"github.com/abdalmoniem/pidcat/internal/logging"
	"github.com/abdalmoniem/pidcat/internal/palette"
	"github.com/abdalmoniem/pidcat/internal/prefs"
	"github.com/abdalmoniem/pidcat/internal/sink"
	"github.com/abdalmoniem/pidcat/internal/source"
	"github.com/abdalmoniem/pidcat/internal/stream"
	"github.com/abdalmoniem/pidcat/internal/tracker"
	"github.com/abdalmoniem/pidcat/internal/tui"
)

// Env holds the process streams a run uses.
type Env struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr io.Writer
	// Runner overrides how adb commands are executed.
	Runner adb.Runner
}

// DefaultEnv uses the process's standard streams.
func DefaultEnv() Env {
	return Env{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes one pidcat session.
func Run(ctx context.Context, opts config.Options, env Env) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logging.New(env.Stderr, opts.Verbose)
	client := adb.NewClient(
		adb.Target{Serial: opts.Serial, Device: opts.Device, Emulator: opts.Emulator},
		adb.WithBinary(opts.ADBPath),
		adb.WithRunner(env.Runner),
	)

	packages := append([]string(nil), opts.Packages...)
	if opts.Current {
		pkg, err := client.ForegroundPackage(ctx)
		if err != nil {
			logger.Warn("resolve current app", "error", err)
		} else {
			logger.Debug("following current app", "package", pkg)
			packages = append(packages, pkg)
		}
	}

	compiled, err := opts.Compile(packages)
	if err != nil {
		return err
	}

	tr := tracker.New(compiled.Filter, compiled.All)
	if opts.InputFile == "" {
		seed(ctx, client, tr, logger)
	}

	src, closeSrc, err := openSource(ctx, opts, client, env, logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	out := sink.NewFanout(logger)
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warn("close output", "error", err)
		}
	}()
	if opts.Output != "" {
		file, err := sink.OpenFile(opts.Output)
		if err != nil {
			return err
		}
		out.Add("file", file)
	}

	stats := &stream.Stats{}
	formatter := format.New(
		compiled.Layout,
		palette.NewAllocator(compiled.KnownTags),
		logcat.DefaultRules(opts.ColorGC),
	)
	loop := stream.NewLoop(
		compiled.Gate,
		stream.NewState(tr, compiled.MinLevel),
		formatter,
		out,
		stats,
		logger,
	)
	notice := config.Notice(packages)

	if opts.TUI {
		view := tui.NewSink()
		out.Add("viewer", view)
		viewerPrefs := prefs.Load(opts.PrefsPath)
		err = tui.Run(ctx, tui.Options{
			Title:       "pidcat: " + notice,
			Stats:       stats,
			Sink:        view,
			BufferLimit: viewerPrefs.BufferLimit,
			Paused:      !viewerPrefs.Follow,
			OnExit: func(following bool) {
				viewerPrefs.Follow = following
				if err := prefs.Save(opts.PrefsPath, viewerPrefs); err != nil {
					logger.Warn("save viewer prefs", "error", err)
				}
			},
		}, func(ctx context.Context) error {
			return loop.Run(ctx, src)
		})
	} else {
		color := !opts.NoColor && !termenv.EnvNoColor()
		console := sink.NewConsole(env.Stdout, color)
		out.Add("console", console)
		printNotice(env.Stdout, notice, console.Color())
		err = loop.Run(ctx, src)
	}

	snap := stats.Snapshot()
	logger.Debug("stream finished",
		"read", snap.Read,
		"shown", snap.Shown,
		"filtered", snap.Filtered,
		"unrecognized", snap.Unrecognized,
		"banners", snap.Banners,
	)
	return err
}

func seed(ctx context.Context, client *adb.Client, tr *tracker.Tracker, logger *slog.Logger) {
	procs, err := client.Processes(ctx)
	if err != nil {
		logger.Warn("could not get initial pids", "error", err)
		return
	}
	added := tr.Seed(procs)
	logger.Debug("seeded pid map", "processes", len(procs), "tracked", added)
}

func openSource(ctx context.Context, opts config.Options, client *adb.Client, env Env, logger *slog.Logger) (source.Source, func(), error) {
	noop := func() {}
	switch {
	case opts.InputFile != "" && opts.Tail > 0:
		lines, err := source.ReadTail(opts.InputFile, opts.Tail)
		if err != nil {
			return nil, noop, err
		}
		return source.NewLines(lines), noop, nil

	case opts.InputFile != "":
		f, err := os.Open(opts.InputFile)
		if err != nil {
			return nil, noop, fmt.Errorf("open input: %w", err)
		}
		return source.NewReader(ctx, f), func() { _ = f.Close() }, nil

	case env.Stdin != nil && !isTerminal(env.Stdin):
		logger.Debug("reading log lines from stdin")
		return source.NewReader(ctx, env.Stdin), noop, nil
	}

	if !opts.KeepLog {
		if err := client.ClearLog(ctx); err != nil {
			logger.Warn("could not clear log buffer", "error", err)
		}
	}
	src, err := source.StartProcess(ctx, logger, client.Binary(), client.LogcatArgs(opts.Regex)...)
	if err != nil {
		return nil, noop, fmt.Errorf("start logcat: %w", err)
	}
	return src, noop, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printNotice(w io.Writer, notice string, color bool) {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	fmt.Fprintln(w, style.Render(notice))
}
