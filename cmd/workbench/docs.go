package main

import (
	"fmt"

	"github.com/fwojciec/workbench"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, workbench.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", workbench.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents indexed. Run 'workbench index <dir>' first.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Indexed documents (%d total):\n\n", len(docs))
	for i, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %d. %s (%d tokens)\n", i+1, doc.Path, doc.Tokens)
		if c.Full {
			fmt.Fprintln(deps.Stdout, doc.Content)
		}
	}

	return nil
}
