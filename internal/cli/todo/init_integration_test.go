package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/testutil/cli"
)

func TestInit(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, InitCmd(), []string{"--json"})
	require.NoError(t, err)

	result := cli.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, database.MemoryPath, data["database"])
	assert.Equal(t, false, data["config_written"])
	assert.NotContains(t, data, "config")

	output, err = cli.ExecuteCLICommand(t, app, InitCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, "✓ Database ready at "+database.MemoryPath+"\n", output)

	output, err = cli.ExecuteCLICommand(t, app, InitCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, database.MemoryPath+"\n", output)
}

func TestCommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range Commands() {
		names[cmd.Name()] = true
		assert.NotNil(t, cmd.Flags().Lookup("json"), cmd.Name())
		assert.NotNil(t, cmd.Flags().Lookup("quiet"), cmd.Name())
	}

	for _, want := range []string{"init", "add", "list", "show", "edit", "done", "undone", "delete"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
