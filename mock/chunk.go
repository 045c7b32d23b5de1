package mock

import (
	"context"

	"github.com/fwojciec/workbench"
)

var (
	_ workbench.ChunkService  = (*ChunkService)(nil)
	_ workbench.SearchService = (*SearchService)(nil)
)

// ChunkService is a mock implementation of workbench.ChunkService.
type ChunkService struct {
	CreateChunksFn           func(ctx context.Context, chunks []*workbench.Chunk) error
	FindChunksFn             func(ctx context.Context, filter workbench.ChunkFilter) ([]*workbench.Chunk, error)
	DeleteChunksByDocumentFn func(ctx context.Context, documentID string) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*workbench.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter workbench.ChunkFilter) ([]*workbench.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	return s.DeleteChunksByDocumentFn(ctx, documentID)
}

// SearchService is a mock implementation of workbench.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query []float32, opts workbench.SearchOptions) ([]workbench.ScoredChunk, error)
}

func (s *SearchService) Search(ctx context.Context, query []float32, opts workbench.SearchOptions) ([]workbench.ScoredChunk, error) {
	return s.SearchFn(ctx, query, opts)
}
