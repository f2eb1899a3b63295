package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string

		wantIDs           []string
		wantNative        string
		wantErr           bool
		wantErrorContains []string
	}{
		{
			name:       "embedded default catalog",
			wantIDs:    []string{"numbers", "family", "colors", "phrases"},
			wantNative: "English",
		},
		{
			name: "catalog file",
			content: `native_language: Spanish
categories:
  - id: animals
    name: Animals
    color: green
    entries:
      - native: perro
        miwok: chuku
        clip: animal_dog
`,
			wantIDs:    []string{"animals"},
			wantNative: "Spanish",
		},
		{
			name: "duplicated category IDs",
			content: `categories:
  - id: animals
    name: Animals
    entries:
      - {native: dog, miwok: chuku, clip: animal_dog}
  - id: animals
    name: More animals
    entries:
      - {native: cat, miwok: puusi, clip: animal_cat}
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid catalog", "categories"},
		},
		{
			name: "entry without a clip",
			content: `categories:
  - id: animals
    name: Animals
    entries:
      - {native: dog, miwok: chuku}
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid catalog", "clip is a required field"},
		},
		{
			name: "clip outside the clip directory",
			content: `categories:
  - id: animals
    name: Animals
    entries:
      - {native: dog, miwok: chuku, clip: ../animal_dog}
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid catalog", "clip must be a file name without a path separator"},
		},
		{
			name: "unknown color",
			content: `categories:
  - id: animals
    name: Animals
    color: orange
    entries:
      - {native: dog, miwok: chuku, clip: animal_dog}
`,
			wantErr:           true,
			wantErrorContains: []string{"color must be one of"},
		},
		{
			name:              "invalid YAML",
			content:           "categories: [[[",
			wantErr:           true,
			wantErrorContains: []string{"yaml.Unmarshal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.content != "" {
				path = filepath.Join(t.TempDir(), "catalog.yml")
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			}

			got, err := LoadCatalog(path)
			if tt.wantErr {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, got.IDs())
			assert.Equal(t, tt.wantNative, got.NativeLanguage)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "os.ReadFile")
}

func TestDefaultCatalogContents(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	numbers, err := catalog.Category("numbers")
	require.NoError(t, err)
	require.Len(t, numbers.Entries, 10)
	assert.Equal(t, Entry{Native: "one", Miwok: "lutti", Image: "number_one", Clip: "number_one"}, numbers.Entries[0])

	colors, err := catalog.Category("colors")
	require.NoError(t, err)
	assert.Len(t, colors.Entries, 8)

	phrases, err := catalog.Category("phrases")
	require.NoError(t, err)
	require.Len(t, phrases.Entries, 10)
	for _, entry := range phrases.Entries {
		assert.False(t, entry.HasImage(), entry.Native)
	}
	assert.Equal(t, "Where are you going?", phrases.Entries[0].Native)
	assert.Equal(t, "oyaaset...", phrases.Entries[2].Miwok)
	assert.Equal(t, "michәksәs?", phrases.Entries[3].Miwok)
	assert.Equal(t, "әәnәs'aa?", phrases.Entries[5].Miwok)
	assert.Equal(t, "Yes, I’m coming.", phrases.Entries[6].Native)
}

func TestCatalog_Category(t *testing.T) {
	catalog := &Catalog{
		Categories: []Category{
			{ID: "numbers", Name: "Numbers"},
			{ID: "colors", Name: "Colors"},
		},
	}

	tests := []struct {
		name     string
		id       string
		wantName string
		wantErr  error
	}{
		{name: "exact match", id: "colors", wantName: "Colors"},
		{name: "case insensitive", id: "NUMBERS", wantName: "Numbers"},
		{name: "unknown category", id: "animals", wantErr: ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Category(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "numbers, colors")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestCategory_Entry(t *testing.T) {
	category := Category{
		ID: "numbers",
		Entries: []Entry{
			{Native: "one", Miwok: "lutti", Clip: "number_one"},
			{Native: "two", Miwok: "otiiko", Clip: "number_two"},
		},
	}

	tests := []struct {
		name      string
		number    int
		wantMiwok string
		wantErr   bool
	}{
		{name: "first entry", number: 1, wantMiwok: "lutti"},
		{name: "last entry", number: 2, wantMiwok: "otiiko"},
		{name: "zero", number: 0, wantErr: true},
		{name: "past the end", number: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := category.Entry(tt.number)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEntryNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMiwok, got.Miwok)
		})
	}

	assert.Equal(t, []string{"number_one", "number_two"}, category.Clips())
}

func TestValidateClipHandle(t *testing.T) {
	tests := []struct {
		handle  string
		wantErr bool
	}{
		{handle: "number_one"},
		{handle: "phrase..long"},
		{handle: "", wantErr: true},
		{handle: ".", wantErr: true},
		{handle: "..", wantErr: true},
		{handle: "../number_one", wantErr: true},
		{handle: "numbers/one", wantErr: true},
		{handle: `numbers\one`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			err := ValidateClipHandle(tt.handle)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClipHandle)
				return
			}
			assert.NoError(t, err)
		})
	}
}
