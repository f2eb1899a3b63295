package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/miwok/internal/testutil"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func TestNewPlayCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		clips       []string
		wantErr     string
		wantErrIs   error
		wantOutput  string
		wantOutcome string
	}{
		{
			name:        "clip plays to the end",
			args:        []string{"numbers", "1"},
			clips:       []string{"number_one"},
			wantOutput:  "> lutti  one\nclip_finished\n",
			wantOutcome: "outcome: completed",
		},
		{
			name:        "missing clip",
			args:        []string{"numbers", "2"},
			wantErr:     "failed to play the clip number_two",
			wantOutcome: "outcome: load_failed",
		},
		{
			name:    "word number is not an integer",
			args:    []string{"numbers", "one"},
			wantErr: "word number must be an integer: one",
		},
		{
			name:      "word number is out of range",
			args:      []string{"numbers", "11"},
			wantErrIs: vocabulary.ErrEntryNotFound,
		},
		{
			name:      "unknown category",
			args:      []string{"animals", "1"},
			wantErrIs: vocabulary.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
			testutil.CreateClipFiles(t, filepath.Join(tmpDir, "clips"), "mp3", tt.clips...)

			got, err := execute(newPlayCommand(), tt.args...)
			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.wantErr != "":
				assert.EqualError(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutput, got)
			}

			if tt.wantOutcome == "" {
				return
			}
			logs, err := execute(newHistoryCommand(), "--format", "yaml")
			require.NoError(t, err)
			assert.Contains(t, logs, tt.wantOutcome)
			assert.Contains(t, logs, "category: numbers")
		})
	}
}

func TestNewStudyCommand(t *testing.T) {
	disableColor(t)
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, testutil.WithPlayerCommand("sh", "-c", "sleep 5", "sh")))
	testutil.CreateClipFiles(t, filepath.Join(tmpDir, "clips"), "mp3", "number_one")

	cmd := newStudyCommand()
	cmd.SetIn(strings.NewReader("1\np\n2\nq\n"))
	got, err := execute(cmd, "numbers")
	require.NoError(t, err)

	assert.Contains(t, got, "Numbers\n  1. lutti  one  [image: number_one]\n")
	assert.Contains(t, got, "> lutti  one\n")
	assert.Contains(t, got, "playing: lutti (one) focus=true\n")
	assert.Contains(t, got, "could not play otiiko\n")

	logs, err := execute(newHistoryCommand(), "--format", "yaml", "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, logs, "outcome: preempted")
	assert.Contains(t, logs, "outcome: load_failed")
}

func TestNewStudyCommand_BrokenConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	_, err := execute(newStudyCommand(), "numbers")
	assert.Error(t, err)
}
