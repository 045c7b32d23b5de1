package main

import (
	"fmt"

	"github.com/fwojciec/workbench"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Repository.Query(deps.Ctx, c.Question)
	if err != nil {
		if workbench.ErrorCode(err) == workbench.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: no codebase has been indexed yet. Run 'workbench index <dir>' first.")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", workbench.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
