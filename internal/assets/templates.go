package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const vocabularySheetTemplateName = "vocabulary-sheet.md.go.tmpl"

//go:embed templates/vocabulary-sheet.md.go.tmpl
var fallbackVocabularySheetTemplate string

// ParseVocabularySheetTemplate parses the template at templatePath.
// The embedded template is used when the path is empty, missing or unparsable.
func ParseVocabularySheetTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, vocabularySheetTemplateName, fallbackVocabularySheetTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":  strings.Join,
		"upper": strings.ToUpper,
		"inc": func(i int) int {
			return i + 1
		},
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template, falling back to the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
