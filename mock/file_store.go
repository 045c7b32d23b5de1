package mock

import (
	"context"

	"github.com/fwojciec/workbench"
)

var _ workbench.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of workbench.FileStore.
type FileStore struct {
	UploadFn     func(ctx context.Context, files workbench.FileCollection) error
	DownloadFn   func(ctx context.Context) (workbench.FileCollection, error)
	WorkingDirFn func() string
}

func (s *FileStore) Upload(ctx context.Context, files workbench.FileCollection) error {
	return s.UploadFn(ctx, files)
}

func (s *FileStore) Download(ctx context.Context) (workbench.FileCollection, error) {
	return s.DownloadFn(ctx)
}

func (s *FileStore) WorkingDir() string {
	return s.WorkingDirFn()
}
