package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/miwok/internal/playback"
)

var outcomes = map[playback.Reason]Outcome{
	playback.ReasonClipFinished: OutcomeCompleted,
	playback.ReasonPreempted:    OutcomePreempted,
	playback.ReasonFocusLost:    OutcomeFocusLost,
	playback.ReasonTeardown:     OutcomeTeardown,
	playback.ReasonLoadFailed:   OutcomeLoadFailed,
	playback.ReasonClipFailed:   OutcomePlaybackFailed,
}

// Recorder turns playback transitions into play logs.
//
// OnTransition never blocks: logs are queued and written by the goroutine launched by Start.
// When the queue is full the log is dropped with a warning.
type Recorder struct {
	repository Repository
	category   string
	logger     *slog.Logger

	mu      sync.Mutex
	started map[string]time.Time
	queue   chan PlayLog
	closed  bool
	running bool
	done    chan struct{}
}

func NewRecorder(repository Repository, category string, bufferSize int) *Recorder {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Recorder{
		repository: repository,
		category:   category,
		logger:     slog.Default(),
		started:    make(map[string]time.Time),
		queue:      make(chan PlayLog, bufferSize),
		done:       make(chan struct{}),
	}
}

// OnTransition implements playback.Observer.
func (r *Recorder) OnTransition(t playback.Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	switch t.To {
	case playback.StatePlaying:
		if _, ok := r.started[t.SessionID]; !ok {
			r.started[t.SessionID] = t.At
		}
	case playback.StateIdle:
		startedAt, played := r.started[t.SessionID]
		delete(r.started, t.SessionID)
		outcome, ok := outcomes[t.Reason]
		if !ok {
			return
		}
		if t.Reason == playback.ReasonLoadFailed && !played {
			startedAt, played = t.At, true
		}
		if !played {
			return
		}

		log := PlayLog{
			SessionID:  t.SessionID,
			Category:   r.category,
			NativeText: t.Entry.Native,
			MiwokText:  t.Entry.Miwok,
			Clip:       t.Entry.Clip,
			Outcome:    outcome,
			StartedAt:  startedAt,
			EndedAt:    t.At,
		}
		select {
		case r.queue <- log:
		default:
			r.logger.Warn("play log queue is full, dropped a log",
				slog.String("session", t.SessionID),
				slog.String("clip", t.Entry.Clip),
			)
		}
	}
}

// Start launches the writer. Logs are written even after ctx is canceled, until Close.
func (r *Recorder) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running || r.closed {
		return
	}
	r.running = true

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer close(r.done)
		for log := range r.queue {
			if err := r.repository.Create(ctx, &log); err != nil {
				r.logger.Error("failed to save a play log",
					slog.String("session", log.SessionID),
					slog.Any("error", err),
				)
			}
		}
	}()
}

// Close stops accepting transitions and waits until the queued logs are written.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	running := r.running
	r.mu.Unlock()

	if running {
		<-r.done
	}
}
