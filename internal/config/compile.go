package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdalmoniem/pidcat/internal/format"
	"github.com/abdalmoniem/pidcat/internal/logcat"
	"github.com/abdalmoniem/pidcat/internal/palette"
	"github.com/abdalmoniem/pidcat/internal/stream"
	"github.com/abdalmoniem/pidcat/internal/tracker"
)

// Validate checks values that cannot be fixed up silently.
func (o Options) Validate() error {
	var errs []error
	if o.TagWidth < 0 {
		errs = append(errs, fmt.Errorf("tag width must be >= 0, got %d", o.TagWidth))
	}
	if o.PackageWidth < 0 {
		errs = append(errs, fmt.Errorf("package width must be >= 0, got %d", o.PackageWidth))
	}
	if o.PIDWidth < 0 {
		errs = append(errs, fmt.Errorf("pid width must be >= 0, got %d", o.PIDWidth))
	}
	if _, ok := logcat.LevelIndex(o.MinLevel); !ok {
		errs = append(errs, fmt.Errorf("min level must be one of %s, got %q", logcat.Levels, o.MinLevel))
	}
	if o.Tail < 0 {
		errs = append(errs, fmt.Errorf("tail must be >= 0, got %d", o.Tail))
	}
	if o.Tail > 0 && o.InputFile == "" {
		errs = append(errs, errors.New("tail needs an input file"))
	}
	return errors.Join(errs...)
}

// Compiled holds the matchers and tables derived from Options.
type Compiled struct {
	Filter    tracker.Filter
	All       bool
	MinLevel  int
	Gate      stream.Config
	Layout    format.Layout
	KnownTags map[string]palette.Color
}

// Compile validates o and builds its matchers. packages replaces o.Packages
// so a foreground package found at startup can be included.
func (o Options) Compile(packages []string) (Compiled, error) {
	if err := o.Validate(); err != nil {
		return Compiled{}, fmt.Errorf("invalid options: %w", err)
	}

	allow, err := stream.CompileTagFilter(o.Tags)
	if err != nil {
		return Compiled{}, fmt.Errorf("compile tags: %w", err)
	}
	deny, err := stream.CompileTagFilter(o.IgnoredTags)
	if err != nil {
		return Compiled{}, fmt.Errorf("compile ignored tags: %w", err)
	}

	known := make(map[string]palette.Color, len(o.KnownTags))
	for tag, name := range o.KnownTags {
		c, err := palette.ParseColor(name)
		if err != nil {
			return Compiled{}, fmt.Errorf("known tag %q: %w", tag, err)
		}
		known[tag] = c
	}

	level, _ := logcat.LevelIndex(o.MinLevel)
	filter := tracker.NewFilter(packages)
	return Compiled{
		Filter:   filter,
		All:      o.All || filter.Empty(),
		MinLevel: level,
		Gate: stream.Config{
			Allow:            allow,
			Deny:             deny,
			IgnoreSystemTags: o.IgnoreSystemTags,
		},
		Layout:    o.Layout(),
		KnownTags: known,
	}, nil
}

// Layout returns the column configuration.
func (o Options) Layout() format.Layout {
	return format.Layout{
		ShowPID:        o.ShowPID,
		PIDWidth:       o.PIDWidth,
		ShowPackage:    o.ShowPackage,
		PackageWidth:   o.PackageWidth,
		TagWidth:       o.TagWidth,
		AlwaysShowTags: o.AlwaysShowTags,
	}
}

// Notice is the line printed when listening starts.
func Notice(packages []string) string {
	if len(packages) == 0 {
		return "listening for logcat messages..."
	}
	return "listening for logcat messages from packages: " + strings.Join(packages, ", ") + "..."
}
