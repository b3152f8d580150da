package patterns

import (
	"regexp"
	"strings"

	"github.com/datahunter/datahunter/internal/types"
)

// Pattern is one compiled matcher belonging to a category.
type Pattern struct {
	Category    types.Category
	Name        string
	Description string

	re *regexp.Regexp
	// group selects the submatch reported for each hit; 0 is the whole match.
	group int
	// joinGroups reports all non-empty submatches joined with "-".
	joinGroups bool
	// valid filters candidates the regex alone cannot exclude.
	valid func(string) bool
	// marker, when set, is reported once if the pattern occurs at all.
	marker string
}

// FindAll returns every non-overlapping match of p in text.
func (p *Pattern) FindAll(text string) []string {
	if p.marker != "" {
		if p.re.MatchString(text) {
			return []string{p.marker}
		}
		return nil
	}
	var out []string
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		var v string
		switch {
		case p.joinGroups:
			var parts []string
			for _, g := range m[1:] {
				if g != "" {
					parts = append(parts, g)
				}
			}
			v = strings.Join(parts, "-")
		case p.group < len(m):
			v = m[p.group]
		}
		if v == "" {
			continue
		}
		if p.valid != nil && !p.valid(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Library is an immutable catalog of patterns grouped by category.
type Library struct {
	patterns []*Pattern
	byCat    map[types.Category][]*Pattern
}

// NewLibrary builds a library from the given patterns. Patterns within a
// category run in the order given.
func NewLibrary(ps ...*Pattern) *Library {
	l := &Library{byCat: map[types.Category][]*Pattern{}}
	for _, p := range ps {
		l.patterns = append(l.patterns, p)
		l.byCat[p.Category] = append(l.byCat[p.Category], p)
	}
	return l
}

var defaultLibrary = NewLibrary(all()...)

// Default returns the shared built-in library.
func Default() *Library { return defaultLibrary }

func all() []*Pattern {
	var out []*Pattern
	out = append(out, cardPatterns...)
	out = append(out, identityPatterns...)
	out = append(out, contactPatterns...)
	out = append(out, secretPatterns...)
	out = append(out, passwordPatterns...)
	out = append(out, bankAccountPattern, privateKeyPattern)
	return out
}

// Match runs every category over text. Every known category is present in
// the result, with an empty slice when nothing matched. Matches are never
// deduplicated across categories.
func (l *Library) Match(text string) map[types.Category][]string {
	out := make(map[types.Category][]string, len(types.Categories()))
	for _, c := range types.Categories() {
		out[c] = []string{}
	}
	for c, ps := range l.byCat {
		for _, p := range ps {
			out[c] = append(out[c], p.FindAll(text)...)
		}
	}
	return out
}

// MatchCategory runs only the patterns of one category.
func (l *Library) MatchCategory(c types.Category, text string) []string {
	var out []string
	for _, p := range l.byCat[c] {
		out = append(out, p.FindAll(text)...)
	}
	return out
}

// Patterns returns the library's patterns in registration order.
func (l *Library) Patterns() []*Pattern {
	out := make([]*Pattern, len(l.patterns))
	copy(out, l.patterns)
	return out
}
