package index

import (
	"context"
	"path"
	"strings"

	"github.com/fwojciec/workbench"
)

const (
	// defaultMaxTokens bounds a chunk so retrieved context stays small.
	defaultMaxTokens = 512

	// Line windows for non-markdown files.
	defaultWindow  = 60
	defaultOverlap = 10
)

// Ensure Chunker implements workbench.Chunker at compile time.
var _ workbench.Chunker = (*Chunker)(nil)

// Chunker splits documents for embedding. Markdown files split at headings;
// everything else splits into overlapping line windows. Oversized pieces are
// re-split against a token budget when a counter is available.
type Chunker struct {
	tokens    workbench.TokenCounter // may be nil
	maxTokens int
}

// NewChunker creates a Chunker. tokens is optional; without it only the
// structural splits apply.
func NewChunker(tokens workbench.TokenCounter) *Chunker {
	return &Chunker{tokens: tokens, maxTokens: defaultMaxTokens}
}

// Chunk splits doc into ordered chunks.
func (c *Chunker) Chunk(ctx context.Context, doc *workbench.Document) ([]*workbench.Chunk, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	var pieces []string
	if isMarkdownPath(doc.Path) {
		pieces = workbench.SplitMarkdown(doc.Content)
	} else {
		pieces = workbench.SplitLines(doc.Content, defaultWindow, defaultOverlap)
	}

	if c.tokens != nil {
		resized, err := c.resize(ctx, pieces)
		if err != nil {
			return nil, err
		}
		pieces = resized
	}

	chunks := make([]*workbench.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		chunks = append(chunks, &workbench.Chunk{
			DocumentID: doc.ID,
			Path:       doc.Path,
			Content:    piece,
			Position:   i,
		})
	}

	return chunks, nil
}

// resize re-splits pieces that exceed the token budget into line windows.
func (c *Chunker) resize(ctx context.Context, pieces []string) ([]string, error) {
	var out []string
	for _, piece := range pieces {
		n, err := c.tokens.CountTokens(ctx, piece)
		if err != nil {
			return nil, err
		}
		if n <= c.maxTokens {
			out = append(out, piece)
			continue
		}

		// Scale the window down proportionally to the overshoot.
		lines := strings.Count(piece, "\n") + 1
		window := lines * c.maxTokens / n
		if window < 1 {
			window = 1
		}
		out = append(out, workbench.SplitLines(piece, window, 0)...)
	}
	return out, nil
}

func isMarkdownPath(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
