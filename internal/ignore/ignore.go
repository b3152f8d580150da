// Package ignore loads .datahunterignore files: one glob per line, "#"
// comments, and a trailing "/" for directory patterns.
package ignore

import (
	"bufio"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is the ignore file looked up at a scan root.
const FileName = ".datahunterignore"

// Matcher reports whether a slash-separated relative path is ignored. The
// zero value ignores nothing.
type Matcher struct {
	patterns []string
}

// Load reads patterns from path. On error the returned Matcher is still
// usable and ignores nothing.
func Load(p string) (Matcher, error) {
	f, err := os.Open(p)
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads ignore patterns from r.
func Parse(r io.Reader) (Matcher, error) {
	var m Matcher
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, strings.TrimPrefix(line, "./"))
	}
	return m, sc.Err()
}

// New builds a matcher from in-memory patterns.
func New(patterns ...string) Matcher {
	var m Matcher
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			m.patterns = append(m.patterns, strings.TrimPrefix(p, "./"))
		}
	}
	return m
}

// Match reports whether rel is ignored.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, p := range m.patterns {
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if ok, _ := doublestar.Match(dir+"/**", rel); ok {
				return true
			}
			if ok, _ := doublestar.Match("**/"+dir+"/**", rel); ok {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, base); ok {
				return true
			}
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m Matcher) Empty() bool { return len(m.patterns) == 0 }

// Append ensures pattern is listed in the ignore file at root, creating the
// file if needed. It is idempotent.
func Append(root, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	p := filepath.Join(root, FileName)
	needNewline := false
	if b, err := os.ReadFile(p); err == nil {
		for _, line := range strings.Split(string(b), "\n") {
			if strings.TrimSpace(line) == pattern {
				return nil
			}
		}
		needNewline = len(b) > 0 && b[len(b)-1] != '\n'
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if needNewline {
		pattern = "\n" + pattern
	}
	_, err = f.WriteString(pattern + "\n")
	return err
}
