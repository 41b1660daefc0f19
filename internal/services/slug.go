package services

import (
	"fmt"
	"strings"
)

// Slug converts an idea title into a filesystem-safe file stem, replacing
// whitespace runs with single underscores. Pure: the same title always
// yields the same slug.
func Slug(title string) string {
	return strings.Join(strings.Fields(title), "_")
}

// TitleFromText extracts the leading colon-delimited title of a free-text
// idea; ideas without a colon are used whole.
func TitleFromText(idea string) string {
	title, _, _ := strings.Cut(idea, ":")
	return strings.TrimSpace(title)
}

// slugger hands out unique slugs within one run. Two titles that collapse
// to the same slug (case, punctuation, whitespace) would otherwise silently
// overwrite each other's guide files.
type slugger struct {
	used map[string]bool
}

func newSlugger() *slugger {
	return &slugger{used: make(map[string]bool)}
}

// Claim returns a slug unused so far in this run, suffixing duplicates with
// a counter. collided reports whether a suffix was needed.
func (s *slugger) Claim(title string) (slug string, collided bool) {
	base := Slug(title)
	if base == "" {
		base = "untitled"
	}
	if !s.used[base] {
		s.used[base] = true
		return base, false
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if !s.used[candidate] {
			s.used[candidate] = true
			return candidate, true
		}
	}
}
