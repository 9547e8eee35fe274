package adb

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/abdalmoniem/pidcat/internal/tracker"
)

type fakeRunner struct {
	out   string
	err   error
	calls [][]string
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return []byte(r.out), r.err
}

func TestClientArgs(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		regex  string
		want   []string
	}{
		{name: "default", want: []string{"logcat", "-v", "brief"}},
		{name: "serial", target: Target{Serial: "emulator-5554"}, want: []string{"-s", "emulator-5554", "logcat", "-v", "brief"}},
		{name: "device and emulator", target: Target{Device: true, Emulator: true}, want: []string{"-d", "-e", "logcat", "-v", "brief"}},
		{name: "regex", regex: "crash", want: []string{"logcat", "-v", "brief", "-e", "crash"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewClient(tt.target).LogcatArgs(tt.regex)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("LogcatArgs = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_WithBinary(t *testing.T) {
	if got := NewClient(Target{}, WithBinary("/opt/sdk/adb")).Binary(); got != "/opt/sdk/adb" {
		t.Fatalf("Binary = %q, want /opt/sdk/adb", got)
	}
	if got := NewClient(Target{}, WithBinary("  ")).Binary(); got != "adb" {
		t.Fatalf("Binary = %q, want adb", got)
	}
}

func TestParseProcesses(t *testing.T) {
	out := `USER      PID   PPID  VSIZE  RSS   WCHAN            PC  NAME
root      1     0     8904   788   SyS_epoll_ 00000000 S /init
u0_a45    4321  596   1528400 61000 SyS_epoll_ 00000000 S com.example.app
u0_a45    4330  596   1498000 52000 SyS_epoll_ 00000000 S com.example.app:remote
system    596   1     1730000 98000 SyS_epoll_ 00000000 S system_server
garbage line
`
	want := []tracker.Process{
		{PID: "1", Name: "/init"},
		{PID: "4321", Name: "com.example.app"},
		{PID: "596", Name: "system_server"},
	}
	if got := ParseProcesses(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseProcesses = %+v, want %+v", got, want)
	}
}

func TestClient_Processes(t *testing.T) {
	r := &fakeRunner{out: "u0_a45    4321  596   1528400 61000 SyS_epoll_ 00000000 S com.example.app\n"}
	c := NewClient(Target{Serial: "abc"}, WithRunner(r))
	procs, err := c.Processes(context.Background())
	if err != nil {
		t.Fatalf("Processes: %v", err)
	}
	if len(procs) != 1 || procs[0].PID != "4321" {
		t.Fatalf("Processes = %+v, want pid 4321", procs)
	}
	if want := []string{"adb", "-s", "abc", "shell", "ps"}; !reflect.DeepEqual(r.calls[0], want) {
		t.Fatalf("command = %q, want %q", r.calls[0], want)
	}
}

func TestParseForegroundPackage(t *testing.T) {
	tests := []struct {
		name string
		dump string
		want string
		ok   bool
	}{
		{
			name: "affinity with equals",
			dump: "  * TaskRecord{4f3b1c0 #42 A=com.example.app U=0 StackId=1 sz=1}\n",
			want: "com.example.app",
			ok:   true,
		},
		{
			name: "affinity with space",
			dump: "    TaskRecord{a1 #7 A com.example.other U 0 sz=1}",
			want: "com.example.other",
			ok:   true,
		},
		{name: "no task record", dump: "ACTIVITY MANAGER ACTIVITIES", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseForegroundPackage(tt.dump)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ParseForegroundPackage = %q,%v want %q,%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestClient_ForegroundPackageAndClear(t *testing.T) {
	r := &fakeRunner{out: "TaskRecord{1 #1 A=com.example.app U=0}"}
	c := NewClient(Target{Device: true}, WithRunner(r))

	pkg, err := c.ForegroundPackage(context.Background())
	if err != nil || pkg != "com.example.app" {
		t.Fatalf("ForegroundPackage = %q,%v want com.example.app", pkg, err)
	}
	if err := c.ClearLog(context.Background()); err != nil {
		t.Fatalf("ClearLog: %v", err)
	}
	if want := []string{"adb", "-d", "logcat", "-c"}; !reflect.DeepEqual(r.calls[1], want) {
		t.Fatalf("clear command = %q, want %q", r.calls[1], want)
	}

	r.err = errors.New("device offline")
	if err := c.ClearLog(context.Background()); !errors.Is(err, r.err) {
		t.Fatalf("ClearLog error = %v, want device offline", err)
	}
	r.err, r.out = nil, "nothing here"
	if _, err := c.ForegroundPackage(context.Background()); err == nil {
		t.Fatalf("ForegroundPackage succeeded without a task record")
	}
}
