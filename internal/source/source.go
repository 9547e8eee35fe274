package source

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// ErrExited reports that the upstream process exited unsuccessfully.
var ErrExited = errors.New("log process exited")

const (
	queueSize     = 256
	maxLineLength = 1024 * 1024
)

// Source yields lines in arrival order.
type Source interface {
	// NextLine blocks until a line is available, the upstream ends (io.EOF)
	// or ctx is done.
	NextLine(ctx context.Context) (string, error)
	// Exited reports whether the upstream has finished producing lines.
	Exited() bool
}

// Normalize decodes raw as UTF-8 with replacement and trims whitespace.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToValidUTF8(raw, "\uFFFD"))
}

// queue is the channel handoff shared by the sources.
type queue struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newQueue() *queue {
	return &queue{
		lines: make(chan string, queueSize),
		done:  make(chan struct{}),
	}
}

// finish records the terminal error. Only the producer calls it, once.
func (q *queue) finish(err error) {
	q.err = err
	close(q.lines)
	close(q.done)
}

func (q *queue) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-q.lines:
		if !ok {
			if q.err != nil {
				return "", q.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (q *queue) exited() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// scan feeds normalized lines from r to emit until r is exhausted.
func scan(r io.Reader, emit func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if err := emit(Normalize(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
