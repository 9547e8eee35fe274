package sink

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/abdalmoniem/pidcat/internal/format"
)

// Console writes to a terminal or whatever stdout is redirected to.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	fd     int
	tty    bool
	color  bool
	closed bool
}

// NewConsole wraps f. Color is used only when requested and f is a
// terminal.
func NewConsole(f *os.File, color bool) *Console {
	fd := int(f.Fd())
	tty := term.IsTerminal(fd)
	return &Console{w: f, fd: fd, tty: tty, color: color && tty}
}

// Write writes text unbuffered.
func (c *Console) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return os.ErrClosed
	}
	_, err := io.WriteString(c.w, text)
	return err
}

// Flush is a no-op; writes are unbuffered.
func (c *Console) Flush() error {
	return nil
}

// Close marks the console closed. The underlying file stays open.
func (c *Console) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

// Width polls the terminal size so resizes apply to the next line.
func (c *Console) Width() int {
	if !c.tty {
		return format.NoWrap
	}
	width, _, err := term.GetSize(c.fd)
	if err != nil || width <= 0 {
		return format.NoWrap
	}
	return width
}

func (c *Console) Color() bool {
	return c.color
}
