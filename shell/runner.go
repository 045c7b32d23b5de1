// Package shell executes commands through the system shell, rooted at a
// working directory, with live output capture and timeout handling.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/fwojciec/workbench"
)

// maxOutputBytes caps each accumulated stream to prevent OOM from chatty
// commands. Observer echo is not capped.
const maxOutputBytes = 1 << 20 // 1 MB

// scanBufferSize bounds the longest single output line the scanner accepts.
const scanBufferSize = 1 << 20

// Ensure Runner implements workbench.Runner at compile time.
var _ workbench.Runner = (*Runner)(nil)

// Runner implements workbench.Runner using /bin/sh. Each run spawns a single
// child process in its own process group so that the whole tree can be
// terminated on timeout or interruption.
type Runner struct {
	dir      string
	observer workbench.RunObserver
	logger   *slog.Logger
}

// NewRunner creates a Runner rooted at dir. observer and logger may be nil.
func NewRunner(dir string, observer workbench.RunObserver, logger *slog.Logger) *Runner {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{dir: dir, observer: observer, logger: logger}
}

// Run executes command through the shell and collects its output.
//
// Output is read line by line on one goroutine per stream; each line is
// echoed to the observer and appended to that stream's buffer. Content is
// complete per stream, but relative ordering between stdout and stderr is
// approximate.
//
// On timeout the process group is killed and an ETIMEOUT error is returned
// together with the output accumulated so far. Cancelling ctx is an operator
// interruption: the process group is killed, a notice is emitted, and the
// call returns normally with partial output and the exit code the killed
// process reported.
func (r *Runner) Run(ctx context.Context, command string, timeout time.Duration) (*workbench.ExecutionResult, error) {
	if command == "" {
		return nil, workbench.Errorf(workbench.EINVALID, "command required")
	}

	start := time.Now()

	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Dir = r.dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting command: %w", err)
	}

	r.logger.Debug("run started", slog.String("command", command), slog.String("dir", r.dir))

	stdoutBuf := newCappedBuffer(maxOutputBytes)
	stderrBuf := newCappedBuffer(maxOutputBytes)

	var wg sync.WaitGroup
	wg.Add(2)
	go r.collect(stdoutPipe, workbench.StreamStdout, stdoutBuf, &wg)
	go r.collect(stderrPipe, workbench.StreamStderr, stderrBuf, &wg)

	// Wait reaps the child only after both pipes have drained, otherwise it
	// can close them while the collectors are mid-read.
	done := make(chan error, 1)
	go func() {
		wg.Wait()
		done <- cmd.Wait()
	}()

	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	result := func(waitErr error) *workbench.ExecutionResult {
		return &workbench.ExecutionResult{
			Stdout:   stdoutBuf.String(),
			Stderr:   stderrBuf.String(),
			ExitCode: exitCode(waitErr),
			Duration: time.Since(start),
		}
	}

	select {
	case waitErr := <-done:
		res := result(waitErr)
		r.logger.Debug("run finished",
			slog.Int("exit_code", res.ExitCode),
			slog.Duration("duration", res.Duration),
		)
		return res, nil

	case <-ctx.Done():
		r.killGroup(cmd)
		waitErr := <-done
		r.observer.Notice("Stopping execution.")
		r.observer.Notice("Execution stopped.")
		res := result(waitErr)
		r.logger.Info("run interrupted",
			slog.Int("exit_code", res.ExitCode),
			slog.Duration("duration", res.Duration),
		)
		return res, nil

	case <-timeoutCh:
		r.killGroup(cmd)
		waitErr := <-done
		res := result(waitErr)
		r.logger.Warn("run timed out",
			slog.Duration("timeout", timeout),
			slog.Duration("duration", res.Duration),
		)
		return res, workbench.Errorf(workbench.ETIMEOUT, "command timed out after %s", timeout)
	}
}

// Start launches command without waiting for it.
func (r *Runner) Start(ctx context.Context, command string) (workbench.Process, error) {
	if command == "" {
		return nil, workbench.Errorf(workbench.EINVALID, "command required")
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Dir = r.dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return killProcessGroup(cmd)
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting command: %w", err)
	}

	r.logger.Debug("process started", slog.String("command", command), slog.Int("pid", cmd.Process.Pid))

	return &process{cmd: cmd, stdout: stdoutPipe, stderr: stderrPipe}, nil
}

// collect reads lines from a pipe, echoing each to the observer and
// appending it to the stream buffer.
func (r *Runner) collect(pipe io.Reader, stream workbench.StreamKind, buf *cappedBuffer, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 64*1024), scanBufferSize)
	for scanner.Scan() {
		line := scanner.Text()
		r.observer.Line(stream, line)
		buf.WriteLine(line)
	}
}

func (r *Runner) killGroup(cmd *exec.Cmd) {
	if err := killProcessGroup(cmd); err != nil {
		r.logger.Warn("failed to kill process group", slog.String("error", err.Error()))
	}
}

// killProcessGroup kills the child and everything it spawned.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	// Negative PID = the entire process group.
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		return err
	}
	return nil
}

// exitCode extracts the process exit code from a Wait error. A killed
// process reports -1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type noopObserver struct{}

func (noopObserver) Line(workbench.StreamKind, string) {}
func (noopObserver) Notice(string)                     {}
