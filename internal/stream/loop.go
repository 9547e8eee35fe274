package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abdalmoniem/pidcat/internal/format"
	"github.com/abdalmoniem/pidcat/internal/logcat"
	"github.com/abdalmoniem/pidcat/internal/source"
)

// Output receives rendered blocks.
type Output interface {
	Emit(b format.Block) error
	Flush() error
}

// Config holds the ordinary-line gate settings.
type Config struct {
	Allow            TagFilter
	Deny             TagFilter
	IgnoreSystemTags bool
}

// Loop processes lines in arrival order.
type Loop struct {
	cfg    Config
	state  *State
	format *format.Formatter
	out    Output
	stats  *Stats
	logger *slog.Logger
}

// NewLoop wires a loop. stats may be nil.
func NewLoop(cfg Config, state *State, f *format.Formatter, out Output, stats *Stats, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{cfg: cfg, state: state, format: f, out: out, stats: stats, logger: logger}
}

// Run consumes src until it ends or ctx is cancelled.
func (l *Loop) Run(ctx context.Context, src source.Source) error {
	tracked := l.state.Tracker.Len()
	l.stats.update(func(s *Snapshot) { s.Tracked = tracked })

	err := l.run(ctx, src)
	l.stats.update(func(s *Snapshot) {
		s.Ended = true
		s.LastError = err
	})
	return err
}

func (l *Loop) run(ctx context.Context, src source.Source) error {
	for {
		line, err := src.NextLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Debug("end of log stream", "upstream_exited", src.Exited())
				return l.flush()
			}
			if ctx.Err() != nil {
				l.logger.Debug("log stream cancelled")
				return l.flush()
			}
			if ferr := l.out.Flush(); ferr != nil {
				l.logger.Warn("flush output", "error", ferr)
			}
			return fmt.Errorf("read log stream: %w", err)
		}
		wrote, err := l.Process(line)
		if err != nil {
			return err
		}
		if wrote {
			if err := l.out.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
		}
	}
}

func (l *Loop) flush() error {
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// Process handles one normalized line and reports whether anything was
// written.
func (l *Loop) Process(line string) (bool, error) {
	l.stats.update(func(s *Snapshot) { s.Read++ })

	if logcat.IsNoise(line) {
		l.stats.update(func(s *Snapshot) { s.Filtered++ })
		return false, nil
	}
	rec, ok := logcat.Parse(line)
	if !ok {
		l.stats.update(func(s *Snapshot) { s.Unrecognized++ })
		return false, nil
	}

	wrote := false
	tr := l.state.Tracker

	if start, ok := logcat.ParseStart(line); ok && tr.Start(start) {
		l.state.AppPID = start.PID
		l.logger.Debug("process started", "pid", start.PID, "package", start.Package, "variant", start.Variant)
		if err := l.banner(l.format.StartBanner(start)); err != nil {
			return wrote, err
		}
		wrote = true
	}

	if death, ok := logcat.ParseDeath(rec.Tag, rec.Message); ok && tr.End(death) {
		l.logger.Debug("process ended", "pid", death.PID, "package", death.Package, "variant", death.Variant)
		if err := l.banner(l.format.EndBanner(death)); err != nil {
			return wrote, err
		}
		wrote = true
	}

	if !l.admit(rec) {
		l.stats.update(func(s *Snapshot) { s.Filtered++ })
		return wrote, nil
	}

	owner := rec.PID
	if rec.Tag == logcat.BacktraceTag && logcat.IsBacktrace(rec.Message) {
		rec.Message = strings.TrimLeft(rec.Message, " \t")
		owner = l.state.AppPID
	}

	pkg, known := tr.Package(owner)
	last, hasLast := l.state.LastTag()
	entry := format.Entry{
		Record:  rec,
		Owner:   owner,
		Package: pkg,
		Known:   known,
		ShowTag: l.format.ShouldShowTag(rec.Tag, last, hasLast),
	}
	if entry.ShowTag && l.format.Layout().TagWidth > 0 {
		l.state.setLastTag(rec.Tag)
	}

	if err := l.out.Emit(l.format.Line(entry)); err != nil {
		return wrote, fmt.Errorf("write output: %w", err)
	}
	l.stats.update(func(s *Snapshot) { s.Shown++ })
	return true, nil
}

func (l *Loop) banner(b format.Block) error {
	l.state.resetTag()
	if err := l.out.Emit(b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	tracked := l.state.Tracker.Len()
	l.stats.update(func(s *Snapshot) {
		s.Banners++
		s.Tracked = tracked
	})
	return nil
}

func (l *Loop) admit(rec logcat.Record) bool {
	if !l.state.Tracker.Owns(rec.PID) {
		return false
	}
	if idx, ok := logcat.LevelIndex(rec.Level); ok && idx < l.state.MinLevel {
		return false
	}
	if l.cfg.IgnoreSystemTags && logcat.IsSystemTag(rec.Tag) {
		return false
	}
	if !l.cfg.Deny.Empty() && l.cfg.Deny.Match(rec.Tag) {
		return false
	}
	if !l.cfg.Allow.Empty() && !l.cfg.Allow.Match(rec.Tag) {
		return false
	}
	return true
}
