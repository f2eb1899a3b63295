package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/miwok/internal/history"
)

// PlayStatistics holds statistics for a time period
type PlayStatistics struct {
	Period         string // "2025-01"
	PlaysCount     int    // Sessions that started a clip or failed to load it
	CompletedCount int    // Sessions that played a clip to the end
	WordsUnique    int    // Unique words listened to in the period
	FailedCount    int    // Sessions whose clip could not be loaded
}

// CompletionRate returns the share of plays that reached the end of the clip.
func (s PlayStatistics) CompletionRate() float64 {
	if s.PlaysCount == 0 {
		return 0
	}
	return float64(s.CompletedCount) / float64(s.PlaysCount)
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods []PlayStatistics
	// Aggregate has no period. Its WordsUnique is deduplicated across periods.
	Aggregate PlayStatistics
}

// periodData tracks counts per period
type periodData struct {
	plays     int
	completed int
	failed    int
	words     map[string]struct{}
}

// CalculateStatistics calculates play statistics from play logs.
// It accepts optional year and month filters (0 means no filter).
// A word is identified by its category and clip.
func CalculateStatistics(logs []history.PlayLog, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalWords := make(map[string]struct{})

	for _, log := range logs {
		if log.StartedAt.IsZero() {
			continue
		}
		logYear := log.StartedAt.Year()
		logMonth := int(log.StartedAt.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		if stats[period] == nil {
			stats[period] = &periodData{words: make(map[string]struct{})}
		}
		data := stats[period]
		data.plays++
		switch log.Outcome {
		case history.OutcomeCompleted:
			data.completed++
		case history.OutcomeLoadFailed:
			data.failed++
			continue
		case history.OutcomePlaybackFailed:
			data.failed++
		}

		word := log.Category + "|" + log.Clip
		data.words[word] = struct{}{}
		globalWords[word] = struct{}{}
	}

	return buildResult(stats, globalWords)
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalWords map[string]struct{}) StatisticsResult {
	periods := make([]PlayStatistics, 0, len(stats))

	var aggregate PlayStatistics
	for period, data := range stats {
		periods = append(periods, PlayStatistics{
			Period:         period,
			PlaysCount:     data.plays,
			CompletedCount: data.completed,
			WordsUnique:    len(data.words),
			FailedCount:    data.failed,
		})
		aggregate.PlaysCount += data.plays
		aggregate.CompletedCount += data.completed
		aggregate.FailedCount += data.failed
	}
	aggregate.WordsUnique = len(globalWords)

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}
