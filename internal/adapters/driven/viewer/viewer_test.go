package viewer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

func TestTool_OpenSucceeds(t *testing.T) {
	v := NewTool("true")
	assert.NoError(t, v.Open(context.Background(), "msg-001"))
}

func TestTool_OpenReportsCommandFailure(t *testing.T) {
	v := NewTool("false")
	err := v.Open(context.Background(), "msg-001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viewer")
}

func TestTool_MissingExecutable(t *testing.T) {
	v := NewTool("definitely-not-a-real-viewer-mailseek")
	err := v.Open(context.Background(), "msg-001")
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestDefault_UsesViewSubcommand(t *testing.T) {
	v := Default("mu")
	assert.Equal(t, "mu", v.executable)
	assert.Equal(t, []string{"view"}, v.args)
}
