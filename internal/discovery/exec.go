package discovery

import (
	"context"
	"io"
	"os/exec"
	"time"
)

// WaitDelay bounds how long Wait keeps the stdout pipe open after the
// process group was killed
const WaitDelay = 2 * time.Second

// ExecCollaborator starts discovery processes with os/exec
type ExecCollaborator struct{}

// NewExecCollaborator returns a new instance of ExecCollaborator
func NewExecCollaborator() *ExecCollaborator {
	return &ExecCollaborator{}
}

// Start spawns binary with args in its own process group. The whole group
// is killed if ctx is done before it exits, so wrappers such as sudo or a
// shell script cannot keep stdout open. Stderr is discarded.
func (c *ExecCollaborator) Start(ctx context.Context, binary string, args []string) (Process, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	killProcessGroup(cmd)

	cmd.WaitDelay = WaitDelay

	stdout, err := cmd.StdoutPipe()

	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &execProcess{cmd: cmd, stdout: stdout}, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (p *execProcess) Stdout() io.Reader {
	return p.stdout
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}
