// Package testutil provides shared test helpers for creating config files and clip fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption appends raw YAML sections to a generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	playerCommand []string
	extra         []string
}

// WithPlayerCommand replaces the external player. The clip path is appended as the last argument.
func WithPlayerCommand(command ...string) ConfigOption {
	return func(c *testConfig) {
		c.playerCommand = command
	}
}

// WithSection appends a raw YAML section, such as a catalog or focus block.
func WithSection(section string) ConfigOption {
	return func(c *testConfig) {
		c.extra = append(c.extra, section)
	}
}

// SetupTestConfig creates a minimal config file and all required directories for testing.
// The player exits immediately unless WithPlayerCommand is given.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	c := testConfig{
		playerCommand: []string{"true"},
	}
	for _, opt := range opts {
		opt(&c)
	}

	for _, d := range []string{"clips", "history", "outputs"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	commandLines := make([]string, 0, len(c.playerCommand))
	for _, arg := range c.playerCommand {
		commandLines = append(commandLines, fmt.Sprintf("    - %q", arg))
	}

	configContent := fmt.Sprintf(`clips:
  directory: %s
  extensions:
    - mp3
    - wav
player:
  command:
%s
history:
  backend: yaml
  file: %s
outputs:
  directory: %s
`,
		filepath.Join(tmpDir, "clips"),
		strings.Join(commandLines, "\n"),
		filepath.Join(tmpDir, "history", "play_logs.yml"),
		filepath.Join(tmpDir, "outputs"),
	)
	for _, section := range c.extra {
		configContent += section
		if !strings.HasSuffix(section, "\n") {
			configContent += "\n"
		}
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateClipFiles writes an empty audio file for each clip handle under directory.
func CreateClipFiles(t *testing.T, directory, extension string, handles ...string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(directory, 0755))
	for _, handle := range handles {
		path := filepath.Join(directory, handle+"."+extension)
		require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))
	}
}
