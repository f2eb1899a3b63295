package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/miwok/internal/config"
	"github.com/at-ishikawa/miwok/internal/history"
	"github.com/at-ishikawa/miwok/internal/playback"
	"github.com/at-ishikawa/miwok/internal/testutil"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func TestOpenHistoryRepository(t *testing.T) {
	tests := []struct {
		name    string
		history config.HistoryConfig
		want    any
	}{
		{
			name:    "yaml",
			history: config.HistoryConfig{Backend: config.HistoryBackendYAML, File: filepath.Join(t.TempDir(), "play_logs.yml")},
			want:    &history.YAMLRepository{},
		},
		{
			name:    "database",
			history: config.HistoryConfig{Backend: config.HistoryBackendDatabase},
			want:    &history.DBRepository{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				History: tt.history,
				Database: config.DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "miwok",
					Username: "user",
				},
			}
			repository, closeRepository, err := openHistoryRepository(cfg)
			require.NoError(t, err)
			assert.IsType(t, tt.want, repository)
			assert.NoError(t, closeRepository())
		})
	}
}

func TestLoadCategory(t *testing.T) {
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

	cfg, catalog, category, err := loadCategory("colors")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Len(t, catalog.Categories, 4)
	assert.Equal(t, "colors", category.ID)

	_, _, _, err = loadCategory("animals")
	assert.ErrorIs(t, err, vocabulary.ErrCategoryNotFound)
}

func TestPlaybackRuntime_Close(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, testutil.WithSection("focus:\n  delayed_grants: true\n")))
	cfg, err := loadConfig()
	require.NoError(t, err)

	runtime, err := newPlaybackRuntime(context.Background(), cfg, "numbers")
	require.NoError(t, err)

	runtime.manager.SelectEntry(vocabulary.Entry{Native: "one", Miwok: "lutti", Clip: "number_one"})
	assert.Equal(t, playback.StateIdle, runtime.manager.State())
	require.NoError(t, runtime.Close())
	assert.Zero(t, runtime.arbiter.Holders())

	logs, err := history.NewYAMLRepository(cfg.History.File).FindRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, history.OutcomeLoadFailed, logs[0].Outcome)
	assert.Equal(t, "numbers", logs[0].Category)
}
