package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/miwok/internal/assets"
	"github.com/at-ishikawa/miwok/internal/export"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func newExportCommand() *cobra.Command {
	var withPDF bool

	command := &cobra.Command{
		Use:   "export [category...]",
		Short: "Write vocabulary sheets of the categories as markdown, and optionally PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalog, err := vocabulary.LoadCatalog(cfg.Catalog.File)
			if err != nil {
				return fmt.Errorf("vocabulary.LoadCatalog() > %w", err)
			}

			categories := catalog.Categories
			if len(args) > 0 {
				categories = make([]vocabulary.Category, 0, len(args))
				for _, id := range args {
					category, err := catalog.Category(id)
					if err != nil {
						return err
					}
					categories = append(categories, category)
				}
			}

			tmpl, err := assets.ParseVocabularySheetTemplate(cfg.Templates.VocabularySheetTemplate)
			if err != nil {
				return fmt.Errorf("assets.ParseVocabularySheetTemplate() > %w", err)
			}

			results, err := export.NewExporter(tmpl, cfg.Outputs.Directory).Export(catalog, categories, withPDF)
			for _, result := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.CategoryID, result.MarkdownPath)
				if result.PDFPath != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.CategoryID, result.PDFPath)
				}
			}
			if err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&withPDF, "pdf", false, "Also convert each sheet to PDF")

	return command
}
