package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mirror Command Tests

func TestMirrorCmd_Use(t *testing.T) {
	assert.Equal(t, "mirror", mirrorCmd.Use)
}

func TestMirrorCmd_HasSubcommands(t *testing.T) {
	commands := mirrorCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "connect")
	assert.Contains(t, commandNames, "status")
	assert.Contains(t, commandNames, "disconnect")
}

func TestMirrorStatusCmd_NotAttached(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"mirror", "status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "not attached")
}

func TestMirrorConnectCmd_RequiresFileFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"mirror", "connect"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestMirrorConnectAndDisconnect(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"mirror", "connect", "--file", "crm.json"})
	defer func() {
		rootCmd.SetArgs(nil)
		mirrorFile = ""
	}()
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Mirroring to crm.json")

	buf.Reset()
	rootCmd.SetArgs([]string{"mirror", "status"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "crm.json")
	assert.Contains(t, buf.String(), "in sync")

	buf.Reset()
	rootCmd.SetArgs([]string{"mirror", "disconnect"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Mirror disconnected")
}
