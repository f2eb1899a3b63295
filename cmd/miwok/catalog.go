package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/miwok/internal/audio"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the vocabulary categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalog, err := vocabulary.LoadCatalog(cfg.Catalog.File)
			if err != nil {
				return fmt.Errorf("vocabulary.LoadCatalog() > %w", err)
			}
			return vocabulary.NewRenderer(cmd.OutOrStdout(), rendererOptions()...).RenderCatalog(catalog)
		},
	}
}

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words <category>",
		Short: "List the words of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, category, err := loadCategory(args[0])
			if err != nil {
				return err
			}
			return vocabulary.NewRenderer(cmd.OutOrStdout(), rendererOptions()...).RenderCategory(category)
		},
	}
}

// missingClip is an entry whose clip file cannot be found.
type missingClip struct {
	category string
	entry    vocabulary.Entry
}

func newValidateCommand() *cobra.Command {
	var skipClips bool

	command := &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog and check that every clip file exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			catalog, err := vocabulary.LoadCatalog(cfg.Catalog.File)
			if err != nil {
				return fmt.Errorf("vocabulary.LoadCatalog() > %w", err)
			}

			var missing []missingClip
			if !skipClips {
				loader := audio.NewProcessLoader(cfg.Clips.Directory, cfg.Clips.Extensions, cfg.Player.Command)
				for _, category := range catalog.Categories {
					for _, entry := range category.Entries {
						if _, err := loader.Resolve(entry.Clip); err != nil {
							if !errors.Is(err, audio.ErrClipNotFound) {
								return fmt.Errorf("loader.Resolve(%s) > %w", entry.Clip, err)
							}
							missing = append(missing, missingClip{category: category.ID, entry: entry})
						}
					}
				}
			}

			displayValidationResults(cmd.OutOrStdout(), catalog, missing)
			if len(missing) > 0 {
				return fmt.Errorf("validation failed with %d missing clip(s)", len(missing))
			}
			return nil
		},
	}

	command.Flags().BoolVar(&skipClips, "skip-clips", false, "Only validate the catalog without checking clip files")

	return command
}

func displayValidationResults(w io.Writer, catalog *vocabulary.Catalog, missing []missingClip) {
	if len(missing) == 0 {
		words := 0
		for _, category := range catalog.Categories {
			words += len(category.Entries)
		}
		_, _ = color.New(color.FgGreen).Fprintf(w, "All validations passed! %d categories, %d words\n", len(catalog.Categories), words)
		return
	}

	_, _ = color.New(color.FgRed, color.Bold).Fprintf(w, "Missing clips (%d)\n", len(missing))
	for _, m := range missing {
		_, _ = fmt.Fprintf(w, "  %s: %s (%s) -> %s\n", m.category, m.entry.Miwok, m.entry.Native, m.entry.Clip)
	}
	_, _ = fmt.Fprintf(w, "\nTotal errors: %d\n", len(missing))
}
