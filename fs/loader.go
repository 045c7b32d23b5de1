package fs

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/workbench"
)

// Ensure Loader implements workbench.DocumentLoader at compile time.
var _ workbench.DocumentLoader = (*Loader)(nil)

// Loader implements workbench.DocumentLoader by walking a directory tree.
// HTML files are converted to markdown when a converter is provided; binary
// files and metadata directories are skipped.
type Loader struct {
	converter workbench.Converter // may be nil
	tokens    workbench.TokenCounter
}

// NewLoader creates a Loader. converter and tokens are optional; pass nil to
// index HTML as-is and skip token counting.
func NewLoader(converter workbench.Converter, tokens workbench.TokenCounter) *Loader {
	return &Loader{converter: converter, tokens: tokens}
}

// LoadDirectory recursively reads dir into documents.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*workbench.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, workbench.Errorf(workbench.EINVALID, "%q is not a directory", dir)
	}

	var docs []*workbench.Document

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
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

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		if len(raw) == 0 || isBinary(raw) {
			return nil
		}

		content := string(raw)
		if l.converter != nil && isHTMLPath(path) {
			converted, err := l.converter.Convert(content)
			if err == nil && strings.TrimSpace(converted) != "" {
				content = converted
			}
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		doc := &workbench.Document{
			Path:        filepath.ToSlash(rel),
			Content:     content,
			ContentHash: HashContent(content),
			LoadedAt:    time.Now().UTC(),
		}
		if l.tokens != nil {
			if n, err := l.tokens.CountTokens(ctx, content); err == nil {
				doc.Tokens = n
			}
		}

		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// HashContent computes the xxHash of content and returns it as a hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
