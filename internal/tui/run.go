package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the viewer and calls feed in a background goroutine with a
// context that is cancelled once the viewer exits. The feed error is
// returned after the user quits.
func Run(ctx context.Context, opts Options, feed func(ctx context.Context) error) error {
	if opts.Sink == nil {
		opts.Sink = NewSink()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	opts.Sink.Attach(p)

	feedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		err := feed(feedCtx)
		p.Send(doneMsg{err: err})
		errc <- err
	}()

	final, runErr := p.Run()
	cancel()
	feedErr := <-errc

	if m, ok := final.(Model); ok && opts.OnExit != nil {
		opts.OnExit(m.Following())
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run viewer: %w", runErr)
	}
	return feedErr
}
