package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/miwok/internal/cli"
	"github.com/at-ishikawa/miwok/internal/history"
)

type OutputFormat string

// Set implements pflag.Value.
func (f *OutputFormat) Set(v string) error {
	switch v {
	case string(OutputFormatTable):
		*f = OutputFormatTable
	case string(OutputFormatYAML):
		*f = OutputFormatYAML
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, OutputFormatTable, OutputFormatYAML)
	}
	return nil
}

// String implements pflag.Value.
func (f *OutputFormat) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

var (
	_ pflag.Value = (*OutputFormat)(nil)
)

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatYAML  OutputFormat = "yaml"
)

func newHistoryCommand() *cobra.Command {
	var limit int
	var category string
	format := OutputFormatTable

	command := &cobra.Command{
		Use:   "history",
		Short: "Show the recently played clips and how each playback ended",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, closeRepository, err := openHistoryRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			fetchLimit := limit
			if category != "" {
				fetchLimit = 0
			}
			logs, err := repository.FindRecent(cmd.Context(), fetchLimit)
			if err != nil {
				return fmt.Errorf("repository.FindRecent() > %w", err)
			}
			logs = filterPlayLogs(logs, category, limit)

			switch format {
			case OutputFormatYAML:
				return writePlayLogsYAML(cmd.OutOrStdout(), logs)
			default:
				return writePlayLogsTable(cmd.OutOrStdout(), logs)
			}
		},
	}

	flags := command.Flags()
	flags.IntVar(&limit, "limit", 20, "Maximum number of logs to show. 0 shows every log")
	flags.StringVar(&category, "category", "", "Only show logs of this category")
	flags.Var(&format, "format", "Output format. Options: table, yaml")

	command.AddCommand(newHistoryStatsCommand())

	return command
}

func newHistoryStatsCommand() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly statistics of the played clips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, closeRepository, err := openHistoryRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			return cli.RunPlayReport(cmd.Context(), cmd.OutOrStdout(), repository, year, month)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")

	return cmd
}

func filterPlayLogs(logs []history.PlayLog, category string, limit int) []history.PlayLog {
	if category != "" {
		filtered := make([]history.PlayLog, 0, len(logs))
		for _, log := range logs {
			if strings.EqualFold(log.Category, category) {
				filtered = append(filtered, log)
			}
		}
		logs = filtered
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs
}

func writePlayLogsTable(w io.Writer, logs []history.PlayLog) error {
	if len(logs) == 0 {
		_, err := fmt.Fprintln(w, "No play logs yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "STARTED\tCATEGORY\tMIWOK\tNATIVE\tOUTCOME\tDURATION")
	for _, log := range logs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			log.StartedAt.Local().Format(time.DateTime),
			log.Category,
			log.MiwokText,
			log.NativeText,
			log.Outcome,
			log.Duration().Round(time.Millisecond),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush() > %w", err)
	}
	return nil
}

func writePlayLogsYAML(w io.Writer, logs []history.PlayLog) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(logs); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}
