package mock

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/workbench"
)

var _ workbench.Runner = (*Runner)(nil)

// Runner is a mock implementation of workbench.Runner.
type Runner struct {
	RunFn   func(ctx context.Context, command string, timeout time.Duration) (*workbench.ExecutionResult, error)
	StartFn func(ctx context.Context, command string) (workbench.Process, error)
}

func (r *Runner) Run(ctx context.Context, command string, timeout time.Duration) (*workbench.ExecutionResult, error) {
	return r.RunFn(ctx, command, timeout)
}

func (r *Runner) Start(ctx context.Context, command string) (workbench.Process, error) {
	return r.StartFn(ctx, command)
}

var _ workbench.Process = (*Process)(nil)

// Process is a mock implementation of workbench.Process.
type Process struct {
	StdoutFn func() io.Reader
	StderrFn func() io.Reader
	WaitFn   func() (int, error)
	KillFn   func() error
}

func (p *Process) Stdout() io.Reader {
	if p.StdoutFn == nil {
		return strings.NewReader("")
	}
	return p.StdoutFn()
}

func (p *Process) Stderr() io.Reader {
	if p.StderrFn == nil {
		return strings.NewReader("")
	}
	return p.StderrFn()
}

func (p *Process) Wait() (int, error) {
	if p.WaitFn == nil {
		return 0, nil
	}
	return p.WaitFn()
}

func (p *Process) Kill() error {
	if p.KillFn == nil {
		return nil
	}
	return p.KillFn()
}
