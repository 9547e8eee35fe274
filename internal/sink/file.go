package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/abdalmoniem/pidcat/internal/format"
)

// File appends plain, unwrapped text to a file.
type File struct {
	f *os.File
	w *bufio.Writer
}

// OpenFile opens path for appending, creating it when missing.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *File) Write(text string) error {
	if s.f == nil {
		return os.ErrClosed
	}
	_, err := s.w.WriteString(text)
	return err
}

func (s *File) Flush() error {
	if s.f == nil {
		return os.ErrClosed
	}
	return s.w.Flush()
}

// Close flushes buffered text and closes the file. Later calls are no-ops.
func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	s.f = nil
	return errors.Join(flushErr, closeErr)
}

func (s *File) Width() int {
	return format.NoWrap
}

func (s *File) Color() bool {
	return false
}
