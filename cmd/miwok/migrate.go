package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/miwok/internal/database"
	"github.com/at-ishikawa/miwok/internal/datasync"
	"github.com/at-ishikawa/miwok/internal/history"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateUpCommand())
	migrateCmd.AddCommand(newMigrateImportDBCommand())

	return migrateCmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the play history schema migrations to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() { _ = db.Close() }()

			version, err := database.Migrate(db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "database schema version: %d\n", version)
			return nil
		},
	}
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the play logs of the history file into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.History.File == "" {
				return fmt.Errorf("history.file is not configured")
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() { _ = db.Close() }()

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(
				history.NewYAMLRepository(cfg.History.File),
				history.NewDBRepository(db),
				out,
			)
			result, err := importer.ImportPlayLogs(cmd.Context(), datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("import play logs: %w", err)
			}

			_, _ = fmt.Fprintln(out, "\nImport Summary:")
			if dryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Play logs:  %d new, %d skipped\n", result.PlayLogsNew, result.PlayLogsSkipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
