// Package export writes printable vocabulary sheets for the catalog categories.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/at-ishikawa/miwok/internal/pdf"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

// Sheet is the data passed to the vocabulary sheet template.
type Sheet struct {
	Name           string
	NativeLanguage string
	Entries        []vocabulary.Entry
}

type Result struct {
	CategoryID   string
	MarkdownPath string
	// PDFPath is empty unless a PDF was requested.
	PDFPath string
}

type Exporter struct {
	template        *template.Template
	outputDirectory string
	pdfOptions      pdf.Options
}

func NewExporter(tmpl *template.Template, outputDirectory string) *Exporter {
	return &Exporter{
		template:        tmpl,
		outputDirectory: outputDirectory,
		pdfOptions:      pdf.DefaultOptions(),
	}
}

// Export writes <output>/<category>.md for each category, and the PDF next to it when withPDF is set.
// It stops at the first failure.
func (exporter *Exporter) Export(catalog *vocabulary.Catalog, categories []vocabulary.Category, withPDF bool) ([]Result, error) {
	if err := os.MkdirAll(exporter.outputDirectory, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", exporter.outputDirectory, err)
	}

	results := make([]Result, 0, len(categories))
	for _, category := range categories {
		result, err := exporter.exportCategory(catalog.NativeLanguage, category, withPDF)
		if err != nil {
			return results, fmt.Errorf("exportCategory(%s) > %w", category.ID, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (exporter *Exporter) exportCategory(nativeLanguage string, category vocabulary.Category, withPDF bool) (Result, error) {
	var buf bytes.Buffer
	if err := exporter.template.Execute(&buf, Sheet{
		Name:           category.Name,
		NativeLanguage: nativeLanguage,
		Entries:        category.Entries,
	}); err != nil {
		return Result{}, fmt.Errorf("template.Execute > %w", err)
	}

	result := Result{
		CategoryID:   category.ID,
		MarkdownPath: filepath.Join(exporter.outputDirectory, category.ID+".md"),
	}
	if err := os.WriteFile(result.MarkdownPath, buf.Bytes(), 0644); err != nil {
		return Result{}, fmt.Errorf("os.WriteFile(%s) > %w", result.MarkdownPath, err)
	}
	if !withPDF {
		return result, nil
	}

	pdfPath, err := pdf.ConvertMarkdownToPDF(result.MarkdownPath, exporter.pdfOptions)
	if err != nil {
		return Result{}, fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
	}
	result.PDFPath = pdfPath
	return result, nil
}
