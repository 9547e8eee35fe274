package palette

// Allocator assigns colors to names with an approximate LRU over six
// rotating colors, layered under a permanent table of overrides.
type Allocator struct {
	assigned map[string]Color
	recent   []Color
}

// KnownTags returns the default overrides for system tags.
func KnownTags() map[string]Color {
	return map[string]Color{
		"dalvikvm":        White,
		"Process":         White,
		"ActivityManager": White,
		"ActivityThread":  White,
		"AndroidRuntime":  Cyan,
		"jdwp":            White,
		"StrictMode":      White,
		"DEBUG":           Yellow,
	}
}

// NewAllocator builds an allocator seeded with KnownTags plus extra.
// Entries in extra replace the defaults for the same name.
func NewAllocator(extra map[string]Color) *Allocator {
	assigned := KnownTags()
	for name, c := range extra {
		assigned[name] = c
	}
	return &Allocator{
		assigned: assigned,
		recent:   []Color{Red, Green, Yellow, Blue, Magenta, Cyan},
	}
}

// ColorFor returns the color for name, assigning one on first sight.
// The resolved color always moves to the most recently used end of the
// rotation, even when name already had it.
func (a *Allocator) ColorFor(name string) Color {
	c, ok := a.assigned[name]
	if !ok {
		c = a.recent[0]
		a.assigned[name] = c
	}
	for i, r := range a.recent {
		if r == c {
			copy(a.recent[i:], a.recent[i+1:])
			a.recent[len(a.recent)-1] = c
			break
		}
	}
	return c
}

// Recent returns a copy of the rotation, least recently used first.
func (a *Allocator) Recent() []Color {
	out := make([]Color, len(a.recent))
	copy(out, a.recent)
	return out
}
