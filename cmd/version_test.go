package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := rootCmd
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Recipe Extraction API")
	assert.Contains(t, out.String(), "Version:")
}

func TestVersionCommandShort(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := rootCmd
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version", "--short"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "v"+Version+"\n", out.String())
}
