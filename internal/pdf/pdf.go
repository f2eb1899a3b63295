// Package pdf renders Markdown vocabulary sheets as printable PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

type Options struct {
	// Orientation is "P" for portrait or "L" for landscape.
	Orientation string
	PageSize    string
	Theme       mdtopdf.Theme
}

func DefaultOptions() Options {
	return Options{
		Orientation: "P",
		PageSize:    "A4",
		Theme:       mdtopdf.LIGHT,
	}
}

// ConvertMarkdownToPDF writes <name>.pdf next to the <name>.md file and returns its absolute path.
func ConvertMarkdownToPDF(markdownPath string, options Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath, err := filepath.Abs(strings.TrimSuffix(markdownPath, ".md") + ".pdf")
	if err != nil {
		return "", fmt.Errorf("filepath.Abs(%s) > %w", markdownPath, err)
	}
	renderer := mdtopdf.NewPdfRenderer(options.Orientation, options.PageSize, pdfPath, "", nil, options.Theme)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}
	return pdfPath, nil
}
