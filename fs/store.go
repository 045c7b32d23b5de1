// Package fs provides disk-backed implementations of the workbench file
// store and document loader.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/workbench"
)

// MetadataDir is the hidden directory reserved for workbench state inside a
// working directory. It is never uploaded, downloaded, or indexed.
const MetadataDir = ".workbench"

// skipDirs are directory names excluded from Download and LoadDirectory.
var skipDirs = map[string]bool{
	MetadataDir:    true,
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
}

// Ensure Store implements workbench.FileStore at compile time.
var _ workbench.FileStore = (*Store)(nil)

// Store implements workbench.FileStore on a local directory.
type Store struct {
	workingDir string
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
// If dir is empty a fresh temporary directory is used.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		tmp, err := os.MkdirTemp("", "workbench-*")
		if err != nil {
			return nil, fmt.Errorf("creating working directory: %w", err)
		}
		dir = tmp
	} else {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating working directory %q: %w", dir, err)
		}
	}
	return &Store{workingDir: dir}, nil
}

// WorkingDir returns the directory the store is rooted at.
func (s *Store) WorkingDir() string {
	return s.workingDir
}

// Upload writes the collection to the working directory, creating parent
// directories as needed. Existing files at uploaded paths are overwritten.
func (s *Store) Upload(ctx context.Context, files workbench.FileCollection) error {
	if err := files.Validate(); err != nil {
		return err
	}

	for _, path := range files.Paths() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fullPath := filepath.Join(s.workingDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %q: %w", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(files[path]), 0644); err != nil {
			return fmt.Errorf("writing %q: %w", path, err)
		}
	}

	return nil
}

// Download reads the working directory back into a FileCollection. Metadata
// directories and binary files are skipped.
func (s *Store) Download(ctx context.Context) (workbench.FileCollection, error) {
	files := workbench.FileCollection{}

	err := filepath.WalkDir(s.workingDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		if isBinary(content) {
			return nil
		}

		rel, err := filepath.Rel(s.workingDir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// binarySampleSize bounds how much of a file is inspected for binary content.
const binarySampleSize = 8000

// isBinary reports whether content looks like binary data. A NUL byte in the
// leading sample is taken as binary, matching what git does.
func isBinary(content []byte) bool {
	sample := content
	if len(sample) > binarySampleSize {
		sample = sample[:binarySampleSize]
	}
	for _, b := range sample {
		if b == 0 {
			return true
		}
	}
	return false
}
