package index_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/index"
	"github.com/fwojciec/workbench/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunker_Chunk(t *testing.T) {
	t.Parallel()

	t.Run("splits markdown at headings", func(t *testing.T) {
		t.Parallel()

		chunker := index.NewChunker(nil)
		doc := &workbench.Document{
			ID:      "doc-1",
			Path:    "README.md",
			Content: "# One\n\nfirst\n\n# Two\n\nsecond\n",
		}

		chunks, err := chunker.Chunk(context.Background(), doc)
		require.NoError(t, err)

		require.Len(t, chunks, 2)
		assert.Equal(t, "doc-1", chunks[0].DocumentID)
		assert.Equal(t, "README.md", chunks[0].Path)
		assert.Equal(t, 0, chunks[0].Position)
		assert.Equal(t, 1, chunks[1].Position)
		assert.Contains(t, chunks[1].Content, "second")
	})

	t.Run("splits code into line windows", func(t *testing.T) {
		t.Parallel()

		chunker := index.NewChunker(nil)
		var sb strings.Builder
		for i := 0; i < 200; i++ {
			sb.WriteString("var x = 1\n")
		}
		doc := &workbench.Document{ID: "doc-1", Path: "main.go", Content: sb.String()}

		chunks, err := chunker.Chunk(context.Background(), doc)
		require.NoError(t, err)

		assert.Greater(t, len(chunks), 1)
	})

	t.Run("re-splits oversized pieces against the token budget", func(t *testing.T) {
		t.Parallel()

		// Every piece reports as over budget, forcing a re-split.
		tokens := &mock.TokenCounter{
			CountTokensFn: func(ctx context.Context, text string) (int, error) {
				return 2000, nil
			},
		}
		chunker := index.NewChunker(tokens)

		var sb strings.Builder
		sb.WriteString("# Big Section\n\n")
		for i := 0; i < 40; i++ {
			sb.WriteString("a line of prose\n")
		}
		doc := &workbench.Document{ID: "doc-1", Path: "doc.md", Content: sb.String()}

		chunks, err := chunker.Chunk(context.Background(), doc)
		require.NoError(t, err)

		assert.Greater(t, len(chunks), 1, "oversized section must be re-split")
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		chunker := index.NewChunker(nil)

		_, err := chunker.Chunk(context.Background(), &workbench.Document{Path: "a.go"})
		require.Error(t, err)
		assert.Equal(t, workbench.EINVALID, workbench.ErrorCode(err))
	})
}
