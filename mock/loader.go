package mock

import (
	"context"

	"github.com/fwojciec/workbench"
)

var _ workbench.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of workbench.DocumentLoader.
type DocumentLoader struct {
	LoadDirectoryFn func(ctx context.Context, dir string) ([]*workbench.Document, error)
}

func (l *DocumentLoader) LoadDirectory(ctx context.Context, dir string) ([]*workbench.Document, error) {
	return l.LoadDirectoryFn(ctx, dir)
}
