package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	for _, env := range []string{"development", "production", "staging"} {
		logger, err := setupLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmd_HasNoFlags(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	assert.False(t, cmd.HasAvailableLocalFlags())
	assert.Empty(t, cmd.Commands())
}
