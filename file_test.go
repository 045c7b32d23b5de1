package workbench_test

import (
	"testing"

	"github.com/fwojciec/workbench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCollection_Paths(t *testing.T) {
	t.Parallel()

	fc := workbench.FileCollection{
		"main.go":       "package main",
		"README.md":     "# readme",
		"internal/a.go": "package internal",
	}

	assert.Equal(t, []string{"README.md", "internal/a.go", "main.go"}, fc.Paths())
}

func TestFileCollection_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid collection", func(t *testing.T) {
		t.Parallel()

		fc := workbench.FileCollection{
			"main.go":         "package main",
			"docs/usage.md":   "usage",
			"nested/deep/f.c": "int main() {}",
		}

		assert.NoError(t, fc.Validate())
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		fc := workbench.FileCollection{"": "content"}

		err := fc.Validate()
		require.Error(t, err)
		assert.Equal(t, workbench.EINVALID, workbench.ErrorCode(err))
	})

	t.Run("absolute path", func(t *testing.T) {
		t.Parallel()

		fc := workbench.FileCollection{"/etc/passwd": "content"}

		err := fc.Validate()
		require.Error(t, err)
		assert.Equal(t, workbench.EINVALID, workbench.ErrorCode(err))
	})

	t.Run("path escaping working directory", func(t *testing.T) {
		t.Parallel()

		fc := workbench.FileCollection{"../outside.txt": "content"}

		err := fc.Validate()
		require.Error(t, err)
		assert.Equal(t, workbench.EINVALID, workbench.ErrorCode(err))
		assert.Contains(t, workbench.ErrorMessage(err), "escapes")
	})

	t.Run("dot segments that stay inside are allowed", func(t *testing.T) {
		t.Parallel()

		fc := workbench.FileCollection{"a/../b.txt": "content"}

		assert.NoError(t, fc.Validate())
	})
}
