package adb

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/abdalmoniem/pidcat/internal/tracker"
)

const defaultBinary = "adb"

var (
	psLineRe   = regexp.MustCompile(`^\w+\s+(\w+)\s+\w+\s+\w+\s+\w+\s+\w+\s+\w+\s+\w\s([\w|.|/]+)$`)
	taskLineRe = regexp.MustCompile(`.*TaskRecord.*A[= ]([^ ^}]*)`)
)

// Target selects the device adb talks to.
type Target struct {
	Serial   string
	Device   bool
	Emulator bool
}

// Runner runs a command to completion and returns its stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Client issues adb commands against one target.
type Client struct {
	binary string
	base   []string
	runner Runner
}

// Option customizes a Client.
type Option func(*Client)

// WithBinary overrides the adb executable.
func WithBinary(path string) Option {
	return func(c *Client) {
		if strings.TrimSpace(path) != "" {
			c.binary = path
		}
	}
}

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// NewClient creates a client for target.
func NewClient(target Target, opts ...Option) *Client {
	c := &Client{binary: defaultBinary, runner: execRunner{}}
	if target.Serial != "" {
		c.base = append(c.base, "-s", target.Serial)
	}
	if target.Device {
		c.base = append(c.base, "-d")
	}
	if target.Emulator {
		c.base = append(c.base, "-e")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the adb executable.
func (c *Client) Binary() string {
	return c.binary
}

// Args prefixes extra with the device selection flags.
func (c *Client) Args(extra ...string) []string {
	args := make([]string, 0, len(c.base)+len(extra))
	args = append(args, c.base...)
	return append(args, extra...)
}

// LogcatArgs returns the arguments for the brief-format log stream, with an
// optional device-side message regex.
func (c *Client) LogcatArgs(regex string) []string {
	extra := []string{"logcat", "-v", "brief"}
	if regex != "" {
		extra = append(extra, "-e", regex)
	}
	return c.Args(extra...)
}

// ClearLog empties the device log buffer.
func (c *Client) ClearLog(ctx context.Context) error {
	if _, err := c.runner.Output(ctx, c.binary, c.Args("logcat", "-c")...); err != nil {
		return fmt.Errorf("clear log: %w", err)
	}
	return nil
}

// Processes lists the running processes.
func (c *Client) Processes(ctx context.Context) ([]tracker.Process, error) {
	out, err := c.runner.Output(ctx, c.binary, c.Args("shell", "ps")...)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return ParseProcesses(string(out)), nil
}

// ForegroundPackage returns the package of the top activity.
func (c *Client) ForegroundPackage(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, c.binary, c.Args("shell", "dumpsys", "activity", "activities")...)
	if err != nil {
		return "", fmt.Errorf("dump activities: %w", err)
	}
	pkg, ok := ParseForegroundPackage(strings.ToValidUTF8(string(out), "\uFFFD"))
	if !ok {
		return "", fmt.Errorf("no foreground activity found")
	}
	return pkg, nil
}

// ParseProcesses extracts pid and name pairs from ps output. The header and
// lines in other shapes are skipped, which includes secondary processes
// since ':' is not accepted in a name.
func ParseProcesses(out string) []tracker.Process {
	var procs []tracker.Process
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		m := psLineRe.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		procs = append(procs, tracker.Process{PID: m[1], Name: m[2]})
	}
	return procs
}

// ParseForegroundPackage finds the package of the first task record in a
// dumpsys activity dump.
func ParseForegroundPackage(dump string) (string, bool) {
	m := taskLineRe.FindStringSubmatch(dump)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}
