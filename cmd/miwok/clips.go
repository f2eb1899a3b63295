package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/miwok/internal/clip"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func newClipsCommand() *cobra.Command {
	clipsCmd := &cobra.Command{
		Use:   "clips",
		Short: "Clip file commands",
	}

	clipsCmd.AddCommand(newClipsFetchCommand())

	return clipsCmd
}

func newClipsFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [category]",
		Short: "Download the clip files of one or all categories into the clips directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Clips.BaseURL == "" {
				return errors.New("clips.base_url is not configured. Set it in the config file or MIWOK_CLIPS_BASE_URL")
			}
			catalog, err := vocabulary.LoadCatalog(cfg.Catalog.File)
			if err != nil {
				return fmt.Errorf("vocabulary.LoadCatalog() > %w", err)
			}
			categories := catalog.Categories
			if len(args) > 0 {
				category, err := catalog.Category(args[0])
				if err != nil {
					return err
				}
				categories = []vocabulary.Category{category}
			}

			fetcher := clip.NewFetcher(cfg.Clips.BaseURL, cfg.Clips.Directory, cfg.Clips.Extensions[0], cfg.Clips.RetryAttempts)
			defer func() {
				_ = fetcher.Close()
			}()

			failed := 0
			for _, category := range categories {
				report := fetcher.FetchCategory(cmd.Context(), category)
				displayFetchReport(cmd.OutOrStdout(), category, report)
				failed += len(report.Failed)
			}
			if failed > 0 {
				return fmt.Errorf("failed to fetch %d clip(s)", failed)
			}
			return nil
		},
	}
}

func displayFetchReport(w io.Writer, category vocabulary.Category, report clip.FetchReport) {
	_, _ = fmt.Fprintf(w, "%s: %d downloaded, %d cached, %d failed\n",
		category.ID, len(report.Downloaded), len(report.Cached), len(report.Failed))

	handles := make([]string, 0, len(report.Failed))
	for handle := range report.Failed {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	for _, handle := range handles {
		_, _ = color.New(color.FgRed).Fprintf(w, "  %s: %v\n", handle, report.Failed[handle])
	}
}
