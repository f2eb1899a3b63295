package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/miwok/internal/testutil"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

const smallCatalog = `categories:
  - id: numbers
    name: Numbers
    entries:
      - {native: one, miwok: lutti, clip: number_one}
      - {native: two, miwok: otiiko, clip: number_two}
`

func setupSmallCatalog(t *testing.T, tmpDir string) string {
	t.Helper()
	path := filepath.Join(tmpDir, "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0644))
	return testutil.SetupTestConfig(t, tmpDir, testutil.WithSection(fmt.Sprintf("catalog:\n  file: %s\n", path)))
}

func TestNewCategoriesCommand(t *testing.T) {
	disableColor(t)
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

	got, err := execute(newCategoriesCommand())
	require.NoError(t, err)
	assert.Contains(t, got, "numbers    Numbers (10 words)\n")
	assert.Contains(t, got, "family     Family Members (10 words)\n")
}

func TestNewWordsCommand(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantErr      error
		wantContains string
	}{
		{
			name:         "known category",
			args:         []string{"numbers"},
			wantContains: "Numbers\n  1. lutti  one  [image: number_one]\n",
		},
		{
			name:         "category ID is case insensitive",
			args:         []string{"NUMBERS"},
			wantContains: " 10. na’aacha  ten",
		},
		{
			name:    "unknown category",
			args:    []string{"animals"},
			wantErr: vocabulary.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disableColor(t)
			setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

			got, err := execute(newWordsCommand(), tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantContains)
		})
	}
}

func TestNewWordsCommand_BrokenConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	_, err := execute(newWordsCommand(), "numbers")
	assert.Error(t, err)
}

func TestNewValidateCommand(t *testing.T) {
	cmd := newValidateCommand()

	assert.Equal(t, "validate", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	skipFlag := cmd.Flags().Lookup("skip-clips")
	assert.NotNil(t, skipFlag)
	assert.Equal(t, "false", skipFlag.DefValue)
}

func TestNewValidateCommand_Run(t *testing.T) {
	tests := []struct {
		name         string
		clips        []string
		args         []string
		wantErr      string
		wantContains []string
	}{
		{
			name:         "every clip exists",
			clips:        []string{"number_one", "number_two"},
			wantContains: []string{"All validations passed! 1 categories, 2 words"},
		},
		{
			name:         "missing clip",
			clips:        []string{"number_one"},
			wantErr:      "validation failed with 1 missing clip(s)",
			wantContains: []string{"Missing clips (1)", "numbers: otiiko (two) -> number_two", "Total errors: 1"},
		},
		{
			name:         "clips are skipped",
			args:         []string{"--skip-clips"},
			wantContains: []string{"All validations passed!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disableColor(t)
			tmpDir := t.TempDir()
			setConfigFile(t, setupSmallCatalog(t, tmpDir))
			testutil.CreateClipFiles(t, filepath.Join(tmpDir, "clips"), "wav", tt.clips...)

			got, err := execute(newValidateCommand(), tt.args...)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestNewValidateCommand_InvalidCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: numbers\n    name: Numbers\n"), 0644))
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, testutil.WithSection(fmt.Sprintf("catalog:\n  file: %s\n", path))))

	_, err := execute(newValidateCommand())
	assert.ErrorContains(t, err, "invalid catalog")
}
