package source

import (
	"context"
	"fmt"
	"io"
)

// ReaderSource reads lines from a pipe or file.
type ReaderSource struct {
	q *queue
}

// NewReader starts reading r in the background. The goroutine ends when r
// is exhausted or ctx is done.
func NewReader(ctx context.Context, r io.Reader) *ReaderSource {
	s := &ReaderSource{q: newQueue()}
	go func() {
		err := scan(r, func(line string) error {
			select {
			case s.q.lines <- line:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			err = fmt.Errorf("read input: %w", err)
		}
		s.q.finish(err)
	}()
	return s
}

func (s *ReaderSource) NextLine(ctx context.Context) (string, error) {
	return s.q.next(ctx)
}

// Exited reports whether the input has been read to the end.
func (s *ReaderSource) Exited() bool {
	return s.q.exited()
}

// LinesSource replays a fixed set of lines.
type LinesSource struct {
	lines []string
}

// NewLines creates a source over lines that were already normalized, such
// as the result of ReadTail.
func NewLines(lines []string) *LinesSource {
	return &LinesSource{lines: append([]string(nil), lines...)}
}

func (s *LinesSource) NextLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *LinesSource) Exited() bool {
	return len(s.lines) == 0
}
