package engine

import (
	"bytes"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// sniffLen bounds how much of a file is inspected when deciding whether it
// is text.
const sniffLen = 800

var (
	mediaPrefixes  = []string{"image/", "video/", "audio/", "font/"}
	archiveMarkers = []string{"zip", "tar", "gzip", "x-7z", "x-rar", "x-bzip2"}
)

// LooksBinary reports whether a file with the given path and leading bytes
// should be kept out of the content scanner: a NUL in the sniffed prefix, an
// extension registered as media, archive or PDF, or a header that sniffs as
// one of those.
func LooksBinary(path string, b []byte) bool {
	head := b[:min(len(b), sniffLen)]
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	if nonTextType(mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))) {
		return true
	}
	return len(head) > 0 && nonTextType(http.DetectContentType(head))
}

func nonTextType(ct string) bool {
	ct, _, _ = strings.Cut(ct, ";")
	ct = strings.TrimSpace(ct)
	if ct == "" {
		return false
	}
	if ct == "application/pdf" {
		return true
	}
	for _, p := range mediaPrefixes {
		if strings.HasPrefix(ct, p) {
			return true
		}
	}
	for _, m := range archiveMarkers {
		if strings.Contains(ct, m) {
			return true
		}
	}
	return false
}
