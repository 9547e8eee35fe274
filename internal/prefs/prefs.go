// Package prefs persists viewer preferences between pidcat runs.
// Preferences are stored in ~/.config/pidcat/viewer.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/abdalmoniem/pidcat/internal/config"
)

// Prefs holds the viewer state worth remembering.
type Prefs struct {
	Follow      bool `toml:"follow"`
	BufferLimit int  `toml:"buffer_limit"`
}

const (
	defaultPrefsPath   = "~/.config/pidcat/viewer.toml"
	defaultBufferLimit = 5000
)

// Defaults returns the preferences used before anything was saved.
func Defaults() Prefs {
	return Prefs{Follow: true, BufferLimit: defaultBufferLimit}
}

// Load reads preferences from path, or the default location when path is
// empty. Unreadable or malformed files fall back to defaults.
func Load(path string) Prefs {
	p := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	file, err := os.Open(resolved)
	if err != nil {
		return p
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults()
	}
	if p.BufferLimit <= 0 {
		p.BufferLimit = defaultBufferLimit
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", errors.Join(errors.New("invalid prefs path"), err)
	}
	return resolved, nil
}
