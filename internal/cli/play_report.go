package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/miwok/internal/history"
	"github.com/at-ishikawa/miwok/internal/statistics"
)

// RunPlayReport writes monthly play statistics
func RunPlayReport(ctx context.Context, w io.Writer, repository history.Repository, year, month int) error {
	logs, err := repository.FindRecent(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load play logs: %w", err)
	}

	result := statistics.CalculateStatistics(logs, year, month)
	if len(result.Periods) == 0 {
		_, _ = fmt.Fprintln(w, "No play logs found for the specified period.")
		return nil
	}

	_, _ = fmt.Fprintln(w, "Play Statistics Report")
	_, _ = fmt.Fprintln(w, "======================")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%-10s  %-22s  %-6s  %-6s  %-6s\n", "Period", "Plays (Completed/All)", "Rate", "Words", "Failed")
	_, _ = fmt.Fprintf(w, "%-10s  %-22s  %-6s  %-6s  %-6s\n", "------", "---------------------", "----", "-----", "------")

	for _, s := range result.Periods {
		writeReportLine(w, s.Period, s)
	}

	_, _ = fmt.Fprintln(w)
	writeReportLine(w, "Totals:", result.Aggregate)
	return nil
}

func writeReportLine(w io.Writer, label string, s statistics.PlayStatistics) {
	_, _ = fmt.Fprintf(w, "%-10s  %-22s  %-6s  %-6d  %-6d\n",
		label,
		fmt.Sprintf("%d / %d", s.CompletedCount, s.PlaysCount),
		fmt.Sprintf("%.0f%%", s.CompletionRate()*100),
		s.WordsUnique,
		s.FailedCount,
	)
}
