package main

import (
	"fmt"

	"github.com/fwojciec/workbench"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	if err := deps.Repository.Load(deps.Ctx, c.Dir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", workbench.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %s\n", c.Dir)
	return nil
}
