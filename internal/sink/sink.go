package sink

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/abdalmoniem/pidcat/internal/format"
	"github.com/abdalmoniem/pidcat/internal/palette"
)

// ErrNoSinks is returned once every sink has been dropped.
var ErrNoSinks = errors.New("no output sinks left")

// Sink is an output destination.
type Sink interface {
	Write(text string) error
	Flush() error
	Close() error
	// Width is the wrap width, or format.NoWrap.
	Width() int
	Color() bool
}

type entry struct {
	name string
	sink Sink
}

// Fanout writes every block to all live sinks.
type Fanout struct {
	sinks  []entry
	logger *slog.Logger
}

// NewFanout creates an empty fanout.
func NewFanout(logger *slog.Logger) *Fanout {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fanout{logger: logger}
}

// Add registers a sink under a name used in log messages.
func (f *Fanout) Add(name string, s Sink) {
	f.sinks = append(f.sinks, entry{name: name, sink: s})
}

// Len returns the number of live sinks.
func (f *Fanout) Len() int {
	return len(f.sinks)
}

// Emit renders b for every sink and writes it with a trailing newline.
func (f *Fanout) Emit(b format.Block) error {
	return f.each("write", func(s Sink) error {
		text := b.Render(s.Width())
		if !s.Color() {
			text = palette.Strip(text)
		}
		return s.Write(text + "\n")
	})
}

// Flush flushes every sink.
func (f *Fanout) Flush() error {
	return f.each("flush", Sink.Flush)
}

// Close closes every remaining sink.
func (f *Fanout) Close() error {
	var errs []error
	for _, e := range f.sinks {
		if err := e.sink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", e.name, err))
		}
	}
	f.sinks = nil
	return errors.Join(errs...)
}

func (f *Fanout) each(op string, fn func(Sink) error) error {
	if len(f.sinks) == 0 {
		return ErrNoSinks
	}
	var last error
	live := f.sinks[:0]
	for _, e := range f.sinks {
		if err := fn(e.sink); err != nil {
			last = fmt.Errorf("%s %s: %w", op, e.name, err)
			f.logger.Warn("dropping output sink", "sink", e.name, "op", op, "error", err)
			if cerr := e.sink.Close(); cerr != nil {
				f.logger.Debug("close dropped sink", "sink", e.name, "error", cerr)
			}
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(f.sinks); i++ {
		f.sinks[i] = entry{}
	}
	f.sinks = live
	if len(f.sinks) == 0 {
		return fmt.Errorf("%w: %w", ErrNoSinks, last)
	}
	return nil
}
