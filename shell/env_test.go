package shell_test

import (
	"context"
	"testing"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/fs"
	"github.com/fwojciec/workbench/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_UploadThenRun(t *testing.T) {
	t.Parallel()

	t.Run("run observes the uploaded file set", func(t *testing.T) {
		t.Parallel()

		store, err := fs.NewStore(t.TempDir())
		require.NoError(t, err)
		env := shell.NewEnv(store, shell.NewRunner(store.WorkingDir(), nil, nil))
		ctx := context.Background()

		files := workbench.FileCollection{
			"greeting.txt": "hello from upload\n",
			"run.sh":       "cat greeting.txt\n",
		}
		require.NoError(t, env.Upload(ctx, files))

		res, err := env.Run(ctx, "sh run.sh", 0)
		require.NoError(t, err)

		assert.Equal(t, "hello from upload\n", res.Stdout)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("download reflects files written by a command", func(t *testing.T) {
		t.Parallel()

		store, err := fs.NewStore(t.TempDir())
		require.NoError(t, err)
		env := shell.NewEnv(store, shell.NewRunner(store.WorkingDir(), nil, nil))
		ctx := context.Background()

		res, err := env.Run(ctx, "printf generated > output.txt", 0)
		require.NoError(t, err)
		require.Equal(t, 0, res.ExitCode)

		files, err := env.Download(ctx)
		require.NoError(t, err)
		assert.Equal(t, "generated", files["output.txt"])
	})

	t.Run("working dir matches the store", func(t *testing.T) {
		t.Parallel()

		store, err := fs.NewStore(t.TempDir())
		require.NoError(t, err)
		env := shell.NewEnv(store, shell.NewRunner(store.WorkingDir(), nil, nil))

		assert.Equal(t, store.WorkingDir(), env.WorkingDir())
	})
}
