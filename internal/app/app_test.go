package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdalmoniem/pidcat/internal/config"
)

const capture = `--------- beginning of main
I/ActivityManager(  100): Start proc 1234:com.example.app/u0a12 for activity com.example.app/.Main
D/MyTag( 1234): hello from the app
D/Other(  999): somebody else
I/ActivityManager(  100): Process com.example.app (pid 1234) has died
D/MyTag( 1234): after death
`

type fakeRunner struct {
	out []byte
	err error
}

func (f fakeRunner) Output(context.Context, string, ...string) ([]byte, error) {
	return f.out, f.err
}

func writeCapture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.txt")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func testEnv(t *testing.T) (Env, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdout.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return Env{
		Stdout: f,
		Stderr: io.Discard,
		Runner: fakeRunner{err: errors.New("adb must not run")},
	}, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestRun_ReplaysCaptureForPackage(t *testing.T) {
	env, stdout := testEnv(t)
	saved := filepath.Join(t.TempDir(), "saved.log")

	opts := config.Defaults()
	opts.Packages = []string{"com.example.app"}
	opts.InputFile = writeCapture(t, capture)
	opts.Output = saved

	if err := Run(context.Background(), opts, env); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readFile(t, stdout)
	if !strings.HasPrefix(got, "listening for logcat messages from packages: com.example.app...\n") {
		t.Fatalf("stdout does not start with notice:\n%s", got)
	}
	for _, want := range []string{
		"Process com.example.app created for activity com.example.app/.Main",
		"hello from the app",
		"Process com.example.app (PID: 1234) ended",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("stdout missing %q:\n%s", want, got)
		}
	}
	for _, unwanted := range []string{"somebody else", "after death"} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("stdout contains %q:\n%s", unwanted, got)
		}
	}

	file := readFile(t, saved)
	if !strings.Contains(file, "hello from the app") {
		t.Fatalf("output file missing app line:\n%s", file)
	}
	if strings.Contains(file, "\x1b[") {
		t.Fatalf("output file contains escape sequences: %q", file)
	}
	if strings.Contains(file, "listening for") {
		t.Fatalf("output file contains the notice: %q", file)
	}
}

func TestRun_TailLimitsReplay(t *testing.T) {
	env, stdout := testEnv(t)

	opts := config.Defaults()
	opts.InputFile = writeCapture(t, capture)
	opts.Tail = 1

	if err := Run(context.Background(), opts, env); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readFile(t, stdout)
	if !strings.HasPrefix(got, "listening for logcat messages...\n") {
		t.Fatalf("stdout does not start with notice:\n%s", got)
	}
	if !strings.Contains(got, "after death") {
		t.Fatalf("stdout missing last line:\n%s", got)
	}
	if strings.Contains(got, "hello from the app") {
		t.Fatalf("stdout contains a line outside the tail:\n%s", got)
	}
}

func TestRun_CurrentFailureIsNotFatal(t *testing.T) {
	env, stdout := testEnv(t)

	opts := config.Defaults()
	opts.Current = true
	opts.InputFile = writeCapture(t, "D/Solo(  42): still shown\n")

	if err := Run(context.Background(), opts, env); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := readFile(t, stdout); !strings.Contains(got, "still shown") {
		t.Fatalf("stdout missing line:\n%s", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Options)
		want   string
	}{
		{
			name:   "invalid tag pattern",
			modify: func(o *config.Options) { o.Tags = []string{"bad(["} },
			want:   "compile tags",
		},
		{
			name:   "missing input file",
			modify: func(o *config.Options) { o.InputFile = filepath.Join(t.TempDir(), "missing.txt") },
			want:   "open input",
		},
		{
			name:   "invalid level",
			modify: func(o *config.Options) { o.MinLevel = "Q" },
			want:   "invalid options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := testEnv(t)
			opts := config.Defaults()
			opts.InputFile = writeCapture(t, capture)
			tt.modify(&opts)

			err := Run(context.Background(), opts, env)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Run error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
