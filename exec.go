package workbench

import (
	"context"
	"io"
	"time"
)

// StreamKind identifies which output stream a line was read from.
type StreamKind string

// Stream kinds for ExecutionResult and RunObserver.
const (
	StreamStdout StreamKind = "stdout"
	StreamStderr StreamKind = "stderr"
)

// ExecutionResult is the record of a completed (or interrupted) command run.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// RunObserver receives command output lines as they are produced, before the
// run completes. Implementations must be safe for concurrent calls because
// stdout and stderr are read on separate goroutines.
type RunObserver interface {
	// Line is called once per output line, without the trailing newline.
	Line(stream StreamKind, text string)

	// Notice is called for human-readable run lifecycle messages, such as
	// the stopped-execution notice emitted on interruption.
	Notice(text string)
}

// ObserverFunc adapts a function to the RunObserver interface. Notice calls
// are delivered as stdout lines.
type ObserverFunc func(stream StreamKind, text string)

// Line implements RunObserver.
func (f ObserverFunc) Line(stream StreamKind, text string) { f(stream, text) }

// Notice implements RunObserver.
func (f ObserverFunc) Notice(text string) { f(StreamStdout, text) }

// Process is a handle to a started child process whose output has not been
// consumed yet. The caller owns the pipes and must call Wait or Kill.
type Process interface {
	// Stdout returns the process's standard output stream.
	Stdout() io.Reader

	// Stderr returns the process's standard error stream.
	Stderr() io.Reader

	// Wait blocks until the process exits and returns its exit code.
	Wait() (int, error)

	// Kill terminates the process and its children.
	Kill() error
}

// Runner executes shell commands rooted at a working directory.
type Runner interface {
	// Run executes the command through the shell, echoing output to the
	// observer while accumulating it, and returns the accumulated output
	// and exit code. A zero timeout means no time limit. On timeout the
	// child is killed and an ETIMEOUT error is returned alongside the
	// partial output. Cancelling ctx is treated as an operator interruption:
	// the child is killed and the call returns normally with whatever was
	// collected. A non-zero exit code is reported via ExitCode, not as an
	// error.
	Run(ctx context.Context, command string, timeout time.Duration) (*ExecutionResult, error)

	// Start launches the command without waiting for it, returning a handle
	// with readable output streams.
	Start(ctx context.Context, command string) (Process, error)
}

// ExecutionEnv binds a file collection to a working directory and exposes
// process execution against it. Upload completes before it returns, so a
// subsequent Run always observes the uploaded file set.
type ExecutionEnv interface {
	Upload(ctx context.Context, files FileCollection) error
	Download(ctx context.Context) (FileCollection, error)
	Run(ctx context.Context, command string, timeout time.Duration) (*ExecutionResult, error)
	Start(ctx context.Context, command string) (Process, error)
	WorkingDir() string
}
