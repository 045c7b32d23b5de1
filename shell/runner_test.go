package shell_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/workbench"
	"github.com/fwojciec/workbench/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures observer callbacks for assertions.
type recordingObserver struct {
	mu      sync.Mutex
	lines   []string
	notices []string
}

func (o *recordingObserver) Line(stream workbench.StreamKind, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, string(stream)+": "+text)
}

func (o *recordingObserver) Notice(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notices = append(o.notices, text)
}

func (o *recordingObserver) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.lines...)
}

func (o *recordingObserver) Notices() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.notices...)
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("collects all stdout lines with exit code zero", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		res, err := runner.Run(context.Background(), "for i in 1 2 3 4 5; do echo line$i; done", 0)
		require.NoError(t, err)

		assert.Equal(t, "line1\nline2\nline3\nline4\nline5\n", res.Stdout)
		assert.Empty(t, res.Stderr)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("passes exit code through unmodified", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		res, err := runner.Run(context.Background(), "exit 7", 0)
		require.NoError(t, err, "non-zero exit is a result, not an error")

		assert.Equal(t, 7, res.ExitCode)
	})

	t.Run("kills the process on timeout", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		start := time.Now()
		res, err := runner.Run(context.Background(), "echo before; sleep 10; echo after", 200*time.Millisecond)

		require.Error(t, err)
		assert.Equal(t, workbench.ETIMEOUT, workbench.ErrorCode(err))
		assert.Less(t, time.Since(start), 5*time.Second, "must not wait out the sleep")
		require.NotNil(t, res, "partial output is returned on timeout")
		assert.Equal(t, "before\n", res.Stdout)
		assert.NotContains(t, res.Stdout, "after")
	})

	t.Run("captures both streams completely", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		cmd := "echo out1; echo err1 >&2; echo out2; echo err2 >&2"
		res, err := runner.Run(context.Background(), cmd, 0)
		require.NoError(t, err)

		assert.Equal(t, "out1\nout2\n", res.Stdout)
		assert.Equal(t, "err1\nerr2\n", res.Stderr)
	})

	t.Run("interruption returns partial output without error", func(t *testing.T) {
		t.Parallel()

		observer := &recordingObserver{}
		runner := shell.NewRunner(t.TempDir(), observer, nil)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(300 * time.Millisecond)
			cancel()
		}()

		res, err := runner.Run(ctx, "echo started; sleep 10; echo finished", 0)
		require.NoError(t, err, "interruption is a graceful stop, not an error")

		assert.Equal(t, "started\n", res.Stdout)
		assert.NotEqual(t, 0, res.ExitCode, "killed process reports a non-zero exit code")
		assert.Contains(t, observer.Notices(), "Stopping execution.")
	})

	t.Run("echoes lines to the observer as they are produced", func(t *testing.T) {
		t.Parallel()

		observer := &recordingObserver{}
		runner := shell.NewRunner(t.TempDir(), observer, nil)

		_, err := runner.Run(context.Background(), "echo hello; echo oops >&2", 0)
		require.NoError(t, err)

		lines := observer.Lines()
		assert.Contains(t, lines, "stdout: hello")
		assert.Contains(t, lines, "stderr: oops")
	})

	t.Run("runs rooted at the working directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		runner := shell.NewRunner(dir, nil, nil)

		res, err := runner.Run(context.Background(), "pwd", 0)
		require.NoError(t, err)

		assert.Equal(t, dir, strings.TrimSpace(res.Stdout))
	})

	t.Run("rejects an empty command", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		_, err := runner.Run(context.Background(), "", 0)
		require.Error(t, err)
		assert.Equal(t, workbench.EINVALID, workbench.ErrorCode(err))
	})
}

func TestRunner_Start(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately with readable streams", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		proc, err := runner.Start(context.Background(), "echo hello")
		require.NoError(t, err)

		out := make([]byte, 64)
		n, _ := proc.Stdout().Read(out)
		assert.Equal(t, "hello\n", string(out[:n]))

		code, err := proc.Wait()
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("kill terminates a long-running process", func(t *testing.T) {
		t.Parallel()

		runner := shell.NewRunner(t.TempDir(), nil, nil)

		proc, err := runner.Start(context.Background(), "sleep 30")
		require.NoError(t, err)

		require.NoError(t, proc.Kill())

		code, err := proc.Wait()
		require.NoError(t, err)
		assert.NotEqual(t, 0, code)
	})
}
