package engine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo is the subset of file metadata the metadata scanner inspects.
type FileInfo struct {
	Path      string
	Size      int64
	Extension string
	// Dir is set when path resolves to a directory, following symlinks.
	Dir bool
}

// FS is the filesystem collaborator used for stat and directory listing.
// Tests substitute an in-memory implementation.
type FS interface {
	// Stat returns metadata for path. A missing path yields exists=false and
	// a nil error.
	Stat(path string) (info FileInfo, exists bool, err error)
	// ReadDir lists a directory. Implementations may return the entries read
	// so far together with an error.
	ReadDir(path string) ([]fs.DirEntry, error)
	// ReadFile returns the contents of a small file such as the ignore file.
	ReadFile(path string) ([]byte, error)
}

// OSFS reads the host filesystem.
type OSFS struct{}

func (OSFS) Stat(path string) (FileInfo, bool, error) {
	fi := FileInfo{Path: path, Extension: extensionOf(path)}
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fi, false, nil
		}
		return fi, false, err
	}
	if st.Mode().IsRegular() {
		fi.Size = st.Size()
	}
	fi.Dir = st.IsDir()
	return fi, true, nil
}

func (OSFS) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func extensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
