package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/mock"
	wslog "github.com/fwojciec/workbench/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRepository(t *testing.T) {
	t.Parallel()

	t.Run("logs load", func(t *testing.T) {
		t.Parallel()

		next := &mock.CodeRepository{
			LoadFn: func(ctx context.Context, dir string) error { return nil },
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		repo := wslog.NewLoggingRepository(next, logger)

		require.NoError(t, repo.Load(context.Background(), "/tmp/src"))

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=load")
		assert.Contains(t, out, "dir=/tmp/src")
	})

	t.Run("logs query error", func(t *testing.T) {
		t.Parallel()

		next := &mock.CodeRepository{
			QueryFn: func(ctx context.Context, question string) (string, error) {
				return "", workbench.Errorf(workbench.ENOTFOUND, "no codebase has been loaded yet")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		repo := wslog.NewLoggingRepository(next, logger)

		_, err := repo.Query(context.Background(), "how does it work?")
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "no codebase has been loaded yet")
	})

	t.Run("logs relevant chunks count", func(t *testing.T) {
		t.Parallel()

		next := &mock.CodeRepository{
			RelevantChunksFn: func(ctx context.Context, prompt string, topK int) ([]workbench.ScoredChunk, error) {
				return []workbench.ScoredChunk{
					{Chunk: &workbench.Chunk{ID: "1"}, Score: 0.9},
					{Chunk: &workbench.Chunk{ID: "2"}, Score: 0.8},
				}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		repo := wslog.NewLoggingRepository(next, logger)

		chunks, err := repo.RelevantChunks(context.Background(), "parser", 2)
		require.NoError(t, err)
		assert.Len(t, chunks, 2)

		out := buf.String()
		assert.Contains(t, out, "top_k=2")
		assert.Contains(t, out, "results=2")
	})
}
