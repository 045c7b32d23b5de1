package shell

import (
	"context"
	"time"

	"github.com/fwojciec/workbench"
)

// Ensure Env implements workbench.ExecutionEnv at compile time.
var _ workbench.ExecutionEnv = (*Env)(nil)

// Env composes a file store and a runner behind the upload/run/download
// lifecycle. Upload is synchronous, so a Run issued after Upload returns
// always observes the uploaded file set.
type Env struct {
	store  workbench.FileStore
	runner workbench.Runner
}

// NewEnv creates an execution environment over store and runner. The runner
// must be rooted at the store's working directory.
func NewEnv(store workbench.FileStore, runner workbench.Runner) *Env {
	return &Env{store: store, runner: runner}
}

// Upload writes the collection to the working directory.
func (e *Env) Upload(ctx context.Context, files workbench.FileCollection) error {
	return e.store.Upload(ctx, files)
}

// Download reads the working directory back into a FileCollection.
func (e *Env) Download(ctx context.Context) (workbench.FileCollection, error) {
	return e.store.Download(ctx)
}

// Run executes the command against the working directory.
func (e *Env) Run(ctx context.Context, command string, timeout time.Duration) (*workbench.ExecutionResult, error) {
	return e.runner.Run(ctx, command, timeout)
}

// Start launches the command without waiting for it.
func (e *Env) Start(ctx context.Context, command string) (workbench.Process, error) {
	return e.runner.Start(ctx, command)
}

// WorkingDir returns the store's working directory.
func (e *Env) WorkingDir() string {
	return e.store.WorkingDir()
}
