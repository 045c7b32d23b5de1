package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/workbench"
	main "github.com/fwojciec/workbench/cmd/workbench"
	"github.com/fwojciec/workbench/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists documents", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter workbench.DocumentFilter) ([]*workbench.Document, error) {
				return []*workbench.Document{
					{ID: "1", Path: "main.go", Content: "package main", Tokens: 3},
					{ID: "2", Path: "README.md", Content: "# Readme", Tokens: 2},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: stdout, Stderr: stderr, Documents: docs}

		cmd := &main.DocsCmd{}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "2 total")
		assert.Contains(t, out, "main.go")
		assert.Contains(t, out, "README.md")
		assert.NotContains(t, out, "package main")
	})

	t.Run("full mode includes content", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter workbench.DocumentFilter) ([]*workbench.Document, error) {
				return []*workbench.Document{
					{ID: "1", Path: "main.go", Content: "package main", Tokens: 3},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: stdout, Stderr: stderr, Documents: docs}

		cmd := &main.DocsCmd{Full: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "package main")
	})
}
