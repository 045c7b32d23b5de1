package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/workbench"
)

// Run executes the chunks command.
func (c *ChunksCmd) Run(deps *Dependencies) error {
	chunks, err := deps.Repository.RelevantChunks(deps.Ctx, c.Prompt, c.TopK)
	if err != nil {
		if workbench.ErrorCode(err) == workbench.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: no codebase has been indexed yet. Run 'workbench index <dir>' first.")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", workbench.ErrorMessage(err))
		return err
	}

	if len(chunks) == 0 {
		fmt.Fprintln(deps.Stdout, "No relevant chunks found.")
		return nil
	}

	for i, sc := range chunks {
		fmt.Fprintf(deps.Stdout, "%d. %s (score %.3f)\n", i+1, sc.Chunk.Path, sc.Score)
		if c.Full {
			fmt.Fprintln(deps.Stdout, sc.Chunk.Content)
			continue
		}
		fmt.Fprintf(deps.Stdout, "   %s\n", firstLine(sc.Chunk.Content))
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
