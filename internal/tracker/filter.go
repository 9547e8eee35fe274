package tracker

import "strings"

// Filter selects processes by name.
type Filter struct {
	Named    []string
	Catchall []string
}

// NewFilter splits package arguments into named and catch-all terms.
func NewFilter(packages []string) Filter {
	var f Filter
	for _, p := range packages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.Contains(p, ":") {
			f.Named = append(f.Named, strings.TrimSuffix(p, ":"))
			continue
		}
		f.Catchall = append(f.Catchall, p)
	}
	return f
}

// Empty reports whether no terms were given.
func (f Filter) Empty() bool {
	return len(f.Named) == 0 && len(f.Catchall) == 0
}

// Match reports whether the process name token is selected. With no terms
// every token matches.
func (f Filter) Match(token string) bool {
	if f.Empty() {
		return true
	}
	if contains(f.Named, token) {
		return true
	}
	if i := strings.IndexByte(token, ':'); i >= 0 {
		token = token[:i]
	}
	return contains(f.Catchall, token)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
