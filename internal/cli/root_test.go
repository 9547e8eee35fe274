package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abdalmoniem/pidcat/internal/config"
)

func execute(t *testing.T, args ...string) (config.Options, bool, string) {
	t.Helper()
	var (
		got    config.Options
		called bool
	)
	cmd := NewRootCommand(func(_ context.Context, opts config.Options) error {
		got = opts
		called = true
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
	return got, called, out.String()
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfigPath, "")
	return home
}

func TestRoot_DefaultsWithoutFlags(t *testing.T) {
	isolate(t)

	got, called, _ := execute(t)
	if !called {
		t.Fatalf("run was not called")
	}
	if !reflect.DeepEqual(got, config.Defaults()) {
		t.Fatalf("options = %+v, want %+v", got, config.Defaults())
	}
}

func TestRoot_ParsesFlagsAndPackages(t *testing.T) {
	isolate(t)

	got, _, _ := execute(t,
		"-m", "10", "-n", "12", "-l", "w", "-p", "-P",
		"-s", "emulator-5554", "-k",
		"-t", "Foo,Bar", "-t", "Baz", "-i", "Noise",
		"--color-gc", "--always-display-tags", "--current",
		"-r", "crash", "com.example.app", "com.other:remote",
	)

	want := config.Defaults()
	want.TagWidth = 10
	want.PackageWidth = 12
	want.MinLevel = "W"
	want.ShowPackage = true
	want.ShowPID = true
	want.Serial = "emulator-5554"
	want.KeepLog = true
	want.Tags = []string{"Foo", "Bar", "Baz"}
	want.IgnoredTags = []string{"Noise"}
	want.ColorGC = true
	want.AlwaysShowTags = true
	want.Current = true
	want.Regex = "crash"
	want.Packages = []string{"com.example.app", "com.other:remote"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("options = %+v, want %+v", got, want)
	}
}

func TestRoot_FlagsOverrideConfigOnlyWhenSet(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "pidcat.toml")
	body := "tag_width = 8\nshow_package = true\nmin_level = \"I\"\ntags = [\"FromConfig\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, _, _ := execute(t, "--config", path, "-m", "15")

	if got.TagWidth != 15 {
		t.Fatalf("TagWidth = %d, want 15", got.TagWidth)
	}
	if !got.ShowPackage {
		t.Fatalf("ShowPackage = false, want true from config")
	}
	if got.MinLevel != "I" {
		t.Fatalf("MinLevel = %q, want %q", got.MinLevel, "I")
	}
	if !reflect.DeepEqual(got.Tags, []string{"FromConfig"}) {
		t.Fatalf("Tags = %v, want [FromConfig]", got.Tags)
	}
}

func TestRoot_Version(t *testing.T) {
	isolate(t)

	for _, flag := range []string{"-v", "--version"} {
		_, called, out := execute(t, flag)
		if called {
			t.Fatalf("%s: run was called", flag)
		}
		if out != "pidcat 2.5.1\n" {
			t.Fatalf("%s output = %q, want %q", flag, out, "pidcat 2.5.1\n")
		}
	}
}

func TestRoot_ConfigErrorIsReturned(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "broken.toml")
	if err := os.WriteFile(path, []byte("tag_width = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := NewRootCommand(func(context.Context, config.Options) error {
		t.Fatalf("run should not be called")
		return nil
	})
	cmd.SetArgs([]string{"--config", path})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("Execute returned nil error for invalid config")
	}
}
