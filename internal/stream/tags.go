package stream

import (
	"fmt"
	"regexp"
	"strings"
)

const regexMeta = `.*+?[]{}()|\^$`

type tagTerm struct {
	literal string
	re      *regexp.Regexp
}

// TagFilter matches tags against user terms. A term containing regex
// metacharacters is a pattern anchored at the start of the tag; any other
// term matches as a substring.
type TagFilter struct {
	terms []tagTerm
}

// CompileTagFilter compiles terms. Blank terms are skipped.
func CompileTagFilter(terms []string) (TagFilter, error) {
	var f TagFilter
	for _, raw := range terms {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if !strings.ContainsAny(t, regexMeta) {
			f.terms = append(f.terms, tagTerm{literal: t})
			continue
		}
		re, err := regexp.Compile(`^(?:` + t + `)`)
		if err != nil {
			return TagFilter{}, fmt.Errorf("tag pattern %q: %w", t, err)
		}
		f.terms = append(f.terms, tagTerm{re: re})
	}
	return f, nil
}

// Empty reports whether the filter has no terms.
func (f TagFilter) Empty() bool {
	return len(f.terms) == 0
}

// Match reports whether any term matches tag.
func (f TagFilter) Match(tag string) bool {
	for _, t := range f.terms {
		if t.re != nil {
			if t.re.MatchString(tag) {
				return true
			}
			continue
		}
		if strings.Contains(tag, t.literal) {
			return true
		}
	}
	return false
}
