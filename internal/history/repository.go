// Package history records which clips were played and how each playback ended.
package history

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history

// Outcome is how a playback session ended.
type Outcome string

const (
	OutcomeCompleted      Outcome = "completed"
	OutcomePreempted      Outcome = "preempted"
	OutcomeFocusLost      Outcome = "focus_lost"
	OutcomeTeardown       Outcome = "teardown"
	OutcomeLoadFailed     Outcome = "load_failed"
	OutcomePlaybackFailed Outcome = "playback_failed"
)

// PlayLog is one playback session of a vocabulary entry.
type PlayLog struct {
	ID         int64     `db:"id" yaml:"id"`
	SessionID  string    `db:"session_id" yaml:"session_id"`
	Category   string    `db:"category" yaml:"category"`
	NativeText string    `db:"native_text" yaml:"native_text"`
	MiwokText  string    `db:"miwok_text" yaml:"miwok_text"`
	Clip       string    `db:"clip" yaml:"clip"`
	Outcome    Outcome   `db:"outcome" yaml:"outcome"`
	StartedAt  time.Time `db:"started_at" yaml:"started_at"`
	EndedAt    time.Time `db:"ended_at" yaml:"ended_at"`
}

// Duration returns how long the clip was held by the session.
func (log PlayLog) Duration() time.Duration {
	return log.EndedAt.Sub(log.StartedAt)
}

type Repository interface {
	Create(ctx context.Context, log *PlayLog) error
	// FindRecent returns the latest logs first. A limit of zero or less returns every log.
	FindRecent(ctx context.Context, limit int) ([]PlayLog, error)
	// FindBySessionID returns nil without an error when no log has the session ID.
	FindBySessionID(ctx context.Context, sessionID string) (*PlayLog, error)
}
