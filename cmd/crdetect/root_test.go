// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"crdetect/internal/issue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev (built from source)", getVersionString())

	Version, Commit = "1.2.3", "abc1234"
	assert.Equal(t, "1.2.3 (commit: abc1234)", getVersionString())
}

func TestFormatErrorForDisplay_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("something broke")
	assert.Equal(t, "something broke", formatErrorForDisplay(err, false))
	assert.Equal(t, "something broke", formatErrorForDisplay(err, true))
}

func TestFormatErrorForDisplay_ActionableError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := issue.NewErrorContext().
		WithOperation("detect container runtime").
		WithSuggestion("Install Docker or Podman").
		Wrap(cause).
		BuildError()

	out := formatErrorForDisplay(err, false)
	assert.Contains(t, out, "failed to detect container runtime")
	assert.Contains(t, out, "Install Docker or Podman")
	assert.NotContains(t, out, "Error chain:")

	verboseOut := formatErrorForDisplay(err, true)
	assert.Contains(t, verboseOut, "Error chain:")
	assert.Contains(t, verboseOut, "connection refused")
}

func TestRootCommand_SubcommandsRegistered(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"detect", "rootless", "config"} {
		require.True(t, names[want], "subcommand %q not registered", want)
	}

	var configNames []string
	for _, c := range configCmd.Commands() {
		configNames = append(configNames, c.Name())
	}
	assert.Contains(t, configNames, "show")
	assert.Contains(t, configNames, "init")
}

func TestRootCommand_Help(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "crdetect", rootCmd.Use)
	assert.True(t, strings.Contains(rootCmd.Long, "crdetect detect"), "long help should show usage examples")
}
