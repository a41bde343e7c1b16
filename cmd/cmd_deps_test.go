package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepsDryRunPrintsInstallCommand(t *testing.T) {
	buf := &bytes.Buffer{}

	cmd := DepsCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--dry-run", "--package", "cowsay"})

	err := cmd.Execute()
	assert.Nil(t, err)

	output := buf.String()
	assert.Contains(t, output, "apt-get install --yes")
	assert.Contains(t, output, "live-build")
	assert.Contains(t, output, "cowsay")
}
