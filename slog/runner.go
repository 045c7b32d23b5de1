// Package slog provides logging decorators for workbench interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/workbench"
)

// Ensure LoggingRunner implements workbench.Runner at compile time.
var _ workbench.Runner = (*LoggingRunner)(nil)

// LoggingRunner wraps a Runner with structured logging of each run.
type LoggingRunner struct {
	next   workbench.Runner
	logger *slog.Logger
}

// NewLoggingRunner creates a new LoggingRunner.
func NewLoggingRunner(next workbench.Runner, logger *slog.Logger) *LoggingRunner {
	return &LoggingRunner{next: next, logger: logger}
}

// Run delegates to the wrapped runner and logs the outcome.
func (r *LoggingRunner) Run(ctx context.Context, command string, timeout time.Duration) (*workbench.ExecutionResult, error) {
	begin := time.Now()
	res, err := r.next.Run(ctx, command, timeout)
	if err != nil {
		r.logger.Error("run",
			slog.String("command", command),
			slog.Duration("duration", time.Since(begin)),
			slog.String("err", err.Error()),
		)
		return res, err
	}

	r.logger.Info("run",
		slog.String("command", command),
		slog.Int("exit_code", res.ExitCode),
		slog.Int("stdout_bytes", len(res.Stdout)),
		slog.Int("stderr_bytes", len(res.Stderr)),
		slog.Duration("duration", time.Since(begin)),
	)
	return res, nil
}

// Start delegates to the wrapped runner.
func (r *LoggingRunner) Start(ctx context.Context, command string) (workbench.Process, error) {
	proc, err := r.next.Start(ctx, command)
	if err != nil {
		r.logger.Error("start", slog.String("command", command), slog.String("err", err.Error()))
		return nil, err
	}
	r.logger.Info("start", slog.String("command", command))
	return proc, nil
}
