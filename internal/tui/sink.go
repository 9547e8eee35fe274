package tui

import (
	"errors"
	"os"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdalmoniem/pidcat/internal/format"
)

var errNotAttached = errors.New("viewer not attached")

// linesMsg carries rendered lines into the program.
type linesMsg []string

// Sink feeds rendered blocks to a running viewer.
type Sink struct {
	program atomic.Pointer[tea.Program]
	width   atomic.Int64
	closed  atomic.Bool
}

// NewSink creates a detached sink. Its width is format.NoWrap until the
// viewer reports a size.
func NewSink() *Sink {
	s := &Sink{}
	s.width.Store(format.NoWrap)
	return s
}

// Attach connects the sink to p.
func (s *Sink) Attach(p *tea.Program) {
	s.program.Store(p)
}

// Write sends text, split into lines, to the viewer. It blocks until the
// viewer accepts the message or has exited.
func (s *Sink) Write(text string) error {
	if s.closed.Load() {
		return os.ErrClosed
	}
	p := s.program.Load()
	if p == nil {
		return errNotAttached
	}
	p.Send(linesMsg(strings.Split(strings.TrimSuffix(text, "\n"), "\n")))
	return nil
}

func (s *Sink) Flush() error {
	return nil
}

func (s *Sink) Close() error {
	s.closed.Store(true)
	return nil
}

// Width is the viewport width.
func (s *Sink) Width() int {
	return int(s.width.Load())
}

func (s *Sink) Color() bool {
	return true
}

func (s *Sink) setWidth(w int) {
	if w <= 0 {
		w = format.NoWrap
	}
	s.width.Store(int64(w))
}
