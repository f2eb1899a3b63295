package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/miwok/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name        string
		opts        []ConfigOption
		wantCommand []string
		wantDelayed bool
	}{
		{
			name:        "default player",
			wantCommand: []string{"true"},
		},
		{
			name:        "custom player",
			opts:        []ConfigOption{WithPlayerCommand("sh", "-c", "sleep 1", "sh")},
			wantCommand: []string{"sh", "-c", "sleep 1", "sh"},
		},
		{
			name:        "extra section",
			opts:        []ConfigOption{WithSection("focus:\n  delayed_grants: true")},
			wantCommand: []string{"true"},
			wantDelayed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			got := SetupTestConfig(t, tmpDir, tt.opts...)
			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

			for _, d := range []string{"clips", "history", "outputs"} {
				info, err := os.Stat(filepath.Join(tmpDir, d))
				require.NoError(t, err, "directory %s should exist", d)
				assert.True(t, info.IsDir(), "%s should be a directory", d)
			}

			loader, err := config.NewConfigLoader(got)
			require.NoError(t, err)
			cfg, err := loader.Load()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(tmpDir, "clips"), cfg.Clips.Directory)
			assert.Equal(t, []string{"mp3", "wav"}, cfg.Clips.Extensions)
			assert.Equal(t, tt.wantCommand, cfg.Player.Command)
			assert.Equal(t, config.HistoryBackendYAML, cfg.History.Backend)
			assert.Equal(t, filepath.Join(tmpDir, "history", "play_logs.yml"), cfg.History.File)
			assert.Equal(t, filepath.Join(tmpDir, "outputs"), cfg.Outputs.Directory)
			assert.Equal(t, tt.wantDelayed, cfg.Focus.DelayedGrants)
		})
	}
}

func TestCreateClipFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clips")
	CreateClipFiles(t, dir, "mp3", "number_one", "number_two")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"number_one.mp3", "number_two.mp3"}, names)
}
