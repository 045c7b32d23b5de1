package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, gemini.DefaultModel)

	_, err := asker.Ask(context.Background(), "", []workbench.ScoredChunk{
		{Chunk: &workbench.Chunk{Path: "a.go", Content: "x"}},
	})

	require.Error(t, err)
	assert.Equal(t, workbench.EINVALID, workbench.ErrorCode(err))
	assert.Contains(t, workbench.ErrorMessage(err), "question required")
}

func TestAsker_Ask_ReturnsErrorWhenNoChunks(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, gemini.DefaultModel) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "what is this?", nil)

	require.Error(t, err)
	assert.Equal(t, workbench.ENOTFOUND, workbench.ErrorCode(err))
	assert.Contains(t, workbench.ErrorMessage(err), "no relevant code")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "codebase")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	chunks := []workbench.ScoredChunk{
		{Chunk: &workbench.Chunk{Path: "cmd/main.go", Content: "func main() {}"}, Score: 0.9},
		{Chunk: &workbench.Chunk{Path: "util.go", Content: "func helper() {}"}, Score: 0.7},
	}

	prompt := gemini.BuildUserPrompt(chunks, "where is main?")

	assert.Contains(t, prompt, "<path>cmd/main.go</path>")
	assert.Contains(t, prompt, "func helper() {}")
	assert.Contains(t, prompt, "<index>2</index>")
	assert.Contains(t, prompt, "Question: where is main?")
}
