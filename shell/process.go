package shell

import (
	"io"
	"os/exec"

	"github.com/fwojciec/workbench"
)

// Ensure process implements workbench.Process at compile time.
var _ workbench.Process = (*process)(nil)

// process wraps a started exec.Cmd with its output pipes.
type process struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr io.Reader
}

func (p *process) Stdout() io.Reader { return p.stdout }
func (p *process) Stderr() io.Reader { return p.stderr }

// Wait blocks until the process exits. The exit code is returned for both
// clean and non-zero exits; an error is returned only when waiting itself
// fails rather than the process exiting unsuccessfully.
func (p *process) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil && p.cmd.ProcessState == nil {
		return -1, err
	}
	return exitCode(err), nil
}

// Kill terminates the process group.
func (p *process) Kill() error {
	return killProcessGroup(p.cmd)
}
