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

func TestAskCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints answer", func(t *testing.T) {
		t.Parallel()

		repo := &mock.CodeRepository{
			QueryFn: func(ctx context.Context, question string) (string, error) {
				assert.Equal(t, "how is parsing done?", question)
				return "With a recursive descent parser.", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: stdout, Stderr: stderr, Repository: repo}

		cmd := &main.AskCmd{Question: "how is parsing done?"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "recursive descent")
	})

	t.Run("explains when nothing is indexed", func(t *testing.T) {
		t.Parallel()

		repo := &mock.CodeRepository{
			QueryFn: func(ctx context.Context, question string) (string, error) {
				return "", workbench.Errorf(workbench.ENOTFOUND, "no codebase has been loaded yet")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: stdout, Stderr: stderr, Repository: repo}

		cmd := &main.AskCmd{Question: "anything"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "workbench index")
	})
}
