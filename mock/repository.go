package mock

import (
	"context"

	"github.com/fwojciec/workbench"
)

var _ workbench.CodeRepository = (*CodeRepository)(nil)

// CodeRepository is a mock implementation of workbench.CodeRepository.
type CodeRepository struct {
	LoadFn           func(ctx context.Context, dir string) error
	QueryFn          func(ctx context.Context, question string) (string, error)
	RelevantChunksFn func(ctx context.Context, prompt string, topK int) ([]workbench.ScoredChunk, error)
}

func (r *CodeRepository) Load(ctx context.Context, dir string) error {
	return r.LoadFn(ctx, dir)
}

func (r *CodeRepository) Query(ctx context.Context, question string) (string, error) {
	return r.QueryFn(ctx, question)
}

func (r *CodeRepository) RelevantChunks(ctx context.Context, prompt string, topK int) ([]workbench.ScoredChunk, error) {
	return r.RelevantChunksFn(ctx, prompt, topK)
}
