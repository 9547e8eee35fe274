package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ProcessSource reads the stdout of a child process. Its stderr is logged.
type ProcessSource struct {
	cmd    *exec.Cmd
	q      *queue
	exited atomic.Bool
}

// StartProcess launches name with args. The child is killed when ctx is
// done.
func StartProcess(ctx context.Context, logger *slog.Logger, name string, args ...string) (*ProcessSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	logger.Debug("log process started", "cmd", cmd.String(), "pid", cmd.Process.Pid)

	s := &ProcessSource{cmd: cmd, q: newQueue()}
	go s.pump(ctx, logger, stdout, stderr)
	return s, nil
}

func (s *ProcessSource) pump(ctx context.Context, logger *slog.Logger, stdout, stderr io.Reader) {
	var g errgroup.Group
	g.Go(func() error {
		err := scan(stdout, func(line string) error {
			select {
			case s.q.lines <- line:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && ctx.Err() == nil {
			// Keep the child from blocking on a full pipe.
			_, _ = io.Copy(io.Discard, stdout)
		}
		return err
	})
	g.Go(func() error {
		return scan(stderr, func(line string) error {
			if line != "" {
				logger.Warn("log process stderr", "line", line)
			}
			return nil
		})
	})
	readErr := g.Wait()
	waitErr := s.cmd.Wait()
	s.exited.Store(true)

	var err error
	switch {
	case ctx.Err() != nil:
		err = ctx.Err()
	case waitErr != nil:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			err = fmt.Errorf("%w: %s", ErrExited, exitErr)
		} else {
			err = fmt.Errorf("wait for log process: %w", waitErr)
		}
	case readErr != nil:
		err = fmt.Errorf("read log process: %w", readErr)
	}
	logger.Debug("log process finished", "error", err)
	s.q.finish(err)
}

func (s *ProcessSource) NextLine(ctx context.Context) (string, error) {
	return s.q.next(ctx)
}

// Exited reports whether the child has exited. Queued lines may still be
// pending.
func (s *ProcessSource) Exited() bool {
	return s.exited.Load()
}
