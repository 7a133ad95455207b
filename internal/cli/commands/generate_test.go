package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	path := writePolicyCatalog(t)

	cmd := NewGenerateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--profile", "publish"})

	require.NoError(t, cmd.ExecuteContext(testContext(path)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[lints.clippy]\n# enabled groups\ncorrectness = { level = \"deny\", priority = -1 }\n"))
	assert.Contains(t, out, "# selected restrictions\n")
	assert.Contains(t, out, "unwrap_used = \"warn\"\n")
	assert.Contains(t, out, "absolute_paths = \"allow\"")
	assert.NotContains(t, out, "cargo_common_metadata")
	assert.True(t, strings.HasSuffix(out, "\n"), "print call terminates output with a newline")
}

func TestGenerateCommand_Workspace(t *testing.T) {
	path := writePolicyCatalog(t)

	cmd := NewGenerateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--profile", "personal", "--workspace"})

	require.NoError(t, cmd.ExecuteContext(testContext(path)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[workspace.lints.clippy]\n"))
	assert.Contains(t, out, "cargo_common_metadata = \"allow\"")
}

func TestGenerateCommand_ProfileRequired(t *testing.T) {
	path := writePolicyCatalog(t)

	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(nil)

	err := cmd.ExecuteContext(testContext(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile is required")
}

func TestGenerateCommand_InvalidProfile(t *testing.T) {
	path := writePolicyCatalog(t)

	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--profile", "staging"})

	err := cmd.ExecuteContext(testContext(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid profile "staging"`)
}

func TestGenerateCommand_PolicyMismatch(t *testing.T) {
	// A catalog missing a policy id must fail without producing output.
	path := writeCatalogWithout(t, "too_many_lines")

	cmd := NewGenerateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--profile", "publish"})

	err := cmd.ExecuteContext(testContext(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lint too_many_lines not in group pedantic")
	assert.Empty(t, buf.String())
}
