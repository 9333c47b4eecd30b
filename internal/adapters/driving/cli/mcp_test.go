package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)
	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "0", port.DefValue)
	assert.NotNil(t, mcpServeCmd.Flags().Lookup("http"))
}

func TestNewMCPServer(t *testing.T) {
	setupTestServices(t)

	server, err := newMCPServer()

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewMCPServer_NotConfigured(t *testing.T) {
	setupTestServices(t)
	profileService = nil

	server, err := newMCPServer()

	require.EqualError(t, err, "services not configured")
	assert.Nil(t, server)
}

func TestMCPServeCmd_InvalidPort(t *testing.T) {
	for _, arg := range []string{"--port=-1", "--port=70000"} {
		setupTestServices(t)

		_, _, err := execute(t, "", "mcp", "serve", arg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid port")
	}
}
