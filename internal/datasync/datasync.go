// Package datasync copies play logs between history backends, such as from the YAML file into the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/at-ishikawa/miwok/internal/history"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	PlayLogsNew     int
	PlayLogsSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer reads play logs from one repository and writes the missing ones to another.
// A log is identified by its session ID, so running an import twice creates nothing new.
type Importer struct {
	source      history.Repository
	destination history.Repository
	writer      io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(source, destination history.Repository, writer io.Writer) *Importer {
	return &Importer{
		source:      source,
		destination: destination,
		writer:      writer,
	}
}

// ImportPlayLogs imports every source log, oldest first.
func (imp *Importer) ImportPlayLogs(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	logs, err := imp.source.FindRecent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("source.FindRecent() > %w", err)
	}
	slices.Reverse(logs)

	for _, log := range logs {
		existing, err := imp.destination.FindBySessionID(ctx, log.SessionID)
		if err != nil {
			return nil, fmt.Errorf("FindBySessionID(%s) > %w", log.SessionID, err)
		}
		if existing != nil {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %s %q (%s)\n", log.SessionID, log.MiwokText, log.Outcome)
			result.PlayLogsSkipped++
			continue
		}

		if !opts.DryRun {
			imported := log
			imported.ID = 0
			if err := imp.destination.Create(ctx, &imported); err != nil {
				return nil, fmt.Errorf("Create(%s) > %w", log.SessionID, err)
			}
		}
		_, _ = fmt.Fprintf(imp.writer, "  [NEW]  %s %q (%s)\n", log.SessionID, log.MiwokText, log.Outcome)
		result.PlayLogsNew++
	}

	return &result, nil
}
