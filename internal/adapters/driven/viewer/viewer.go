// Package viewer opens messages in the external viewer collaborator by
// invoking a configured command with the message identifier appended.
package viewer

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driven"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// Ensure Tool implements the interface.
var _ driven.MessageViewer = (*Tool)(nil)

// Tool runs an external command to display a message. The default viewer
// is the search tool's own view subcommand.
type Tool struct {
	executable string
	args       []string
}

// NewTool creates a viewer that runs executable with the given leading
// arguments; the message identifier is appended as the final argument.
func NewTool(executable string, args ...string) *Tool {
	return &Tool{executable: executable, args: args}
}

// Default returns the viewer for the given search tool executable.
func Default(executable string) *Tool {
	return NewTool(executable, "view")
}

// Open displays the message with the given identifier.
func (t *Tool) Open(ctx context.Context, id string) error {
	path, err := exec.LookPath(t.executable)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrToolNotFound, t.executable)
	}

	args := append(append([]string{}, t.args...), id)
	logger.Debug("viewer: %s %v", path, args)

	cmd := exec.CommandContext(ctx, path, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("viewer %s: %w: %s", t.executable, err, out)
	}
	return nil
}
