package engine

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// directories that only hold tooling or dependency trees when default
// excludes are enabled
var defaultExcludeDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	".cache":       true,
}

// OS cruft that never carries user data
var defaultExcludeFileNames = map[string]bool{
	".ds_store":   true,
	"thumbs.db":   true,
	"desktop.ini": true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

func isDefaultFileExcluded(name string) bool {
	return defaultExcludeFileNames[strings.ToLower(name)]
}

// globFilter holds the parsed include/exclude lists. Include globs, when
// present, act as a positive filter; exclude globs are subtracted last.
type globFilter struct {
	includes []string
	excludes []string
}

func newGlobFilter(include, exclude string) globFilter {
	return globFilter{includes: parseGlobsList(include), excludes: parseGlobsList(exclude)}
}

func (g globFilter) allowed(relPath string) bool {
	rp := filepath.ToSlash(relPath)
	if len(g.includes) > 0 && !matchAnyGlob(rp, g.includes) {
		return false
	}
	if len(g.excludes) > 0 && matchAnyGlob(rp, g.excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if t := trimGlobPrefix(p); t != p && t != "" {
			out = append(out, t)
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	base := filepath.Base(pathToMatch)
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
