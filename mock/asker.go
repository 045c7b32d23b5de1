package mock

import (
	"context"

	"github.com/fwojciec/workbench"
)

var _ workbench.Asker = (*Asker)(nil)

// Asker is a mock implementation of workbench.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, chunks []workbench.ScoredChunk) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, chunks []workbench.ScoredChunk) (string, error) {
	return a.AskFn(ctx, question, chunks)
}
