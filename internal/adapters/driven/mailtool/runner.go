// Package mailtool runs the external mail search tool and streams its
// output as ordered process events.
package mailtool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driven"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// defaultChunkSize is the stdout read buffer size. Output is delivered in
// whatever chunks the pipe yields; the parser tolerates any cut points.
const defaultChunkSize = 4096

// Ensure Runner implements the interface.
var _ driven.ProcessRunner = (*Runner)(nil)

// Runner spawns search processes with os/exec. One goroutine per run pumps
// stdout chunks and the exit status into the event channel, in order, and
// closes it after the exit event. Cancelling the start context kills the
// process.
type Runner struct {
	chunkSize int
}

// NewRunner creates a process runner.
func NewRunner() *Runner {
	return &Runner{chunkSize: defaultChunkSize}
}

// Start resolves and spawns the command. The returned channel carries every
// stdout chunk followed by exactly one exit event.
func (r *Runner) Start(ctx context.Context, c domain.Command) (<-chan driven.ProcessEvent, error) {
	path, err := exec.LookPath(c.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrToolNotFound, c.Path)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Stderr = io.Discard
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", c.Path, err)
	}

	events := make(chan driven.ProcessEvent, 64)
	go r.pump(cmd, stdout, events)
	return events, nil
}

// pump reads stdout until it drains, forwarding chunks as they arrive, then
// reaps the process and emits the exit event.
func (r *Runner) pump(cmd *exec.Cmd, stdout io.Reader, events chan<- driven.ProcessEvent) {
	defer close(events)

	buf := make([]byte, r.chunkSize)
	for {
		n, readErr := stdout.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			events <- driven.ProcessEvent{Chunk: chunk}
		}
		if readErr == nil {
			continue
		}

		exitCode := 0
		var exitErr error
		if err := cmd.Wait(); err != nil {
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				exitCode = ee.ExitCode()
			} else {
				exitCode = -1
				exitErr = err
			}
		}
		if !errors.Is(readErr, io.EOF) && exitErr == nil {
			exitErr = readErr
		}
		logger.Debug("process exited: code=%d err=%v", exitCode, exitErr)
		events <- driven.ProcessEvent{Exited: true, ExitCode: exitCode, Err: exitErr}
		return
	}
}
