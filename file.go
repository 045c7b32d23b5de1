package workbench

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// FileCollection maps relative file paths to their content. It represents a
// project's files in memory, independent of any particular directory on disk.
type FileCollection map[string]string

// Paths returns the collection's paths in sorted order.
func (fc FileCollection) Paths() []string {
	paths := make([]string, 0, len(fc))
	for path := range fc {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Validate returns an error if any path in the collection is empty, absolute,
// or escapes the working directory via "..".
func (fc FileCollection) Validate() error {
	for path := range fc {
		if path == "" {
			return Errorf(EINVALID, "file path required")
		}
		if filepath.IsAbs(path) {
			return Errorf(EINVALID, "file path %q must be relative", path)
		}
		clean := filepath.Clean(path)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return Errorf(EINVALID, "file path %q escapes the working directory", path)
		}
	}
	return nil
}

// FileStore materializes file collections onto a working directory and reads
// them back. The working directory is owned by the store for the lifetime of
// an execution environment.
type FileStore interface {
	// Upload writes the collection to the working directory. The previous
	// content of uploaded paths is overwritten; other files are left alone.
	Upload(ctx context.Context, files FileCollection) error

	// Download reads the working directory back into a FileCollection,
	// skipping metadata directories and binary files.
	Download(ctx context.Context) (FileCollection, error)

	// WorkingDir returns the directory the store is rooted at.
	WorkingDir() string
}
