package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/shell"
	wslog "github.com/fwojciec/workbench/slog"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	observer := &echoObserver{deps: deps}
	runner := wslog.NewLoggingRunner(shell.NewRunner(c.Dir, observer, deps.Logger), deps.Logger)

	timeout := time.Duration(c.Timeout) * time.Second

	res, err := runner.Run(deps.Ctx, c.Command, timeout)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", workbench.ErrorMessage(err))
		return err
	}

	if res.ExitCode != 0 {
		return fmt.Errorf("command exited with code %d", res.ExitCode)
	}
	return nil
}

// echoObserver streams command output to the CLI's own stdout and stderr as
// it is produced.
type echoObserver struct {
	deps *Dependencies
}

func (o *echoObserver) Line(stream workbench.StreamKind, text string) {
	if stream == workbench.StreamStderr {
		fmt.Fprintln(o.deps.Stderr, text)
		return
	}
	fmt.Fprintln(o.deps.Stdout, text)
}

func (o *echoObserver) Notice(text string) {
	fmt.Fprintln(o.deps.Stdout, text)
}
