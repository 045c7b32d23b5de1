package mock

import (
	"context"

	"github.com/fwojciec/workbench"
)

var _ workbench.Chunker = (*Chunker)(nil)

// Chunker is a mock implementation of workbench.Chunker.
type Chunker struct {
	ChunkFn func(ctx context.Context, doc *workbench.Document) ([]*workbench.Chunk, error)
}

func (c *Chunker) Chunk(ctx context.Context, doc *workbench.Document) ([]*workbench.Chunk, error) {
	return c.ChunkFn(ctx, doc)
}
