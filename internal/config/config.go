package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultConfigPath = "~/.config/pidcat/config.toml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "PIDCAT_CONFIG"

	DefaultTagWidth     = 20
	DefaultPackageWidth = 20
	DefaultPIDWidth     = 6
	DefaultMinLevel     = "V"
)

// Options is the full run configuration after the config file and command
// line flags have been merged.
type Options struct {
	Packages []string
	All      bool
	Current  bool

	TagWidth     int
	PackageWidth int
	PIDWidth     int
	MinLevel     string

	ShowPackage      bool
	ShowPID          bool
	AlwaysShowTags   bool
	ColorGC          bool
	NoColor          bool
	IgnoreSystemTags bool

	Tags        []string
	IgnoredTags []string
	// KnownTags maps tag names to color names, on top of the built-in
	// overrides.
	KnownTags map[string]string

	Serial   string
	Device   bool
	Emulator bool
	ADBPath  string
	KeepLog  bool
	Regex    string

	Output    string
	InputFile string
	Tail      int
	TUI       bool
	// PrefsPath overrides where viewer preferences are kept.
	PrefsPath string
	Verbose   bool
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		TagWidth:     DefaultTagWidth,
		PackageWidth: DefaultPackageWidth,
		PIDWidth:     DefaultPIDWidth,
		MinLevel:     DefaultMinLevel,
	}
}

type fileOptions struct {
	TagWidth         *int              `toml:"tag_width"`
	PackageWidth     *int              `toml:"package_width"`
	PIDWidth         *int              `toml:"pid_width"`
	MinLevel         string            `toml:"min_level"`
	ShowPackage      *bool             `toml:"show_package"`
	ShowPID          *bool             `toml:"show_pid"`
	AlwaysShowTags   *bool             `toml:"always_display_tags"`
	ColorGC          *bool             `toml:"color_gc"`
	NoColor          *bool             `toml:"no_color"`
	IgnoreSystemTags *bool             `toml:"ignore_system_tags"`
	Tags             []string          `toml:"tags"`
	IgnoredTags      []string          `toml:"ignored_tags"`
	ADBPath          string            `toml:"adb_path"`
	Output           string            `toml:"output"`
	KnownTags        map[string]string `toml:"known_tags"`
}

// ResolvePath picks the config file location: an explicit path, then
// PIDCAT_CONFIG, then the default under ~/.config.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// Load reads the config file at path on top of Defaults. A missing file is
// not an error.
func Load(path string) (Options, error) {
	opts := Defaults()

	resolved, err := ResolvePath(path)
	if err != nil {
		return Options{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileOptions
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Options{}, fmt.Errorf("parse config: %w", err)
	}

	setInt(&opts.TagWidth, raw.TagWidth)
	setInt(&opts.PackageWidth, raw.PackageWidth)
	setInt(&opts.PIDWidth, raw.PIDWidth)
	if level := strings.TrimSpace(raw.MinLevel); level != "" {
		opts.MinLevel = level
	}
	setBool(&opts.ShowPackage, raw.ShowPackage)
	setBool(&opts.ShowPID, raw.ShowPID)
	setBool(&opts.AlwaysShowTags, raw.AlwaysShowTags)
	setBool(&opts.ColorGC, raw.ColorGC)
	setBool(&opts.NoColor, raw.NoColor)
	setBool(&opts.IgnoreSystemTags, raw.IgnoreSystemTags)
	opts.Tags = SplitTerms(raw.Tags)
	opts.IgnoredTags = SplitTerms(raw.IgnoredTags)
	opts.ADBPath = strings.TrimSpace(raw.ADBPath)
	if out := strings.TrimSpace(raw.Output); out != "" {
		opts.Output = mustExpand(out)
	}
	if len(raw.KnownTags) > 0 {
		opts.KnownTags = make(map[string]string, len(raw.KnownTags))
		for tag, color := range raw.KnownTags {
			opts.KnownTags[tag] = strings.TrimSpace(color)
		}
	}

	return opts, nil
}

// SplitTerms flattens repeated, comma-separated values into trimmed terms.
func SplitTerms(values []string) []string {
	var out []string
	for _, v := range values {
		for _, term := range strings.Split(v, ",") {
			if term = strings.TrimSpace(term); term != "" {
				out = append(out, term)
			}
		}
	}
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
