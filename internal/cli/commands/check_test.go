package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	path := writePolicyCatalog(t)

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--profile", "publish"})

	require.NoError(t, cmd.ExecuteContext(testContext(path)))

	out := buf.String()
	assert.Contains(t, out, "Policy matches catalog")
	assert.Contains(t, out, "enabled groups")
	assert.Contains(t, out, "selected restrictions")
	assert.Contains(t, out, "restrictions explicit allows")
}

func TestCheckCommand_JSON(t *testing.T) {
	path := writePolicyCatalog(t)

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--profile", "personal", "--format", "json"})

	require.NoError(t, cmd.ExecuteContext(testContext(path)))

	var summaries []checkGroupSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summaries))
	require.Len(t, summaries, 8)
	assert.Equal(t, "enabled groups", summaries[0].Comment)
	assert.Equal(t, 8, summaries[0].Settings)
	assert.Equal(t, "cargo overrides", summaries[5].Comment)
	assert.Equal(t, 2, summaries[5].Settings)
	assert.Equal(t, 78, summaries[6].Settings)
}

func TestCheckCommand_Mismatch(t *testing.T) {
	path := writeCatalogWithout(t, "unwrap_used")

	cmd := NewCheckCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--profile", "publish"})

	err := cmd.ExecuteContext(testContext(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy does not match catalog")
	assert.Contains(t, err.Error(), "lint unwrap_used not part of group restriction")
}
