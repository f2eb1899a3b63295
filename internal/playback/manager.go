// Package playback plays the pronunciation clip of a selected vocabulary entry,
// one clip at a time, while following the audio focus rules of the shared device.
package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

// Manager owns at most one playback session.
//
// Selecting an entry tears down the current session, requests transient focus and,
// once focus is granted, loads and starts the entry's clip. Every exit path releases
// the clip and abandons focus. All methods are safe to call concurrently; callbacks
// that do not apply to the current state are ignored.
type Manager struct {
	arbiter   FocusArbiter
	loader    ClipLoader
	observers []Observer
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string

	mu      sync.Mutex
	session Session
	clip    Clip
	// focus is set between a focus request that was not denied and the matching abandon.
	focus *focusRegistration
}

// focusRegistration is the listener handed to the arbiter for a single focus request.
// Changes that arrive after the manager abandoned it are dropped.
type focusRegistration struct {
	manager *Manager
}

func (r *focusRegistration) OnFocusChange(change FocusChange) {
	r.manager.focusChanged(r, change)
}

type Option func(*Manager)

func WithObserver(observer Observer) Option {
	return func(m *Manager) {
		m.observers = append(m.observers, observer)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(arbiter FocusArbiter, loader ClipLoader, options ...Option) *Manager {
	m := &Manager{
		arbiter: arbiter,
		loader:  loader,
		logger:  slog.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// State returns the state of the current session.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.State
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := m.session
	session.ClipLoaded = m.clip != nil
	return session
}

// SelectEntry preempts any existing session and requests focus for the entry.
// A denied request leaves the manager idle.
func (m *Manager) SelectEntry(entry vocabulary.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.release(ReasonPreempted)

	m.session = Session{
		ID:    m.newID(),
		Entry: entry,
		State: StateIdle,
	}
	m.logger.Debug("entry selected",
		slog.String("session", m.session.ID),
		slog.String("entry", entry.String()),
	)
	m.transition(StateFocusRequested, ReasonSelected)

	registration := &focusRegistration{manager: m}
	result := m.arbiter.RequestTransientFocus(registration)
	switch result {
	case FocusGranted:
		m.focus = registration
		m.grant()
	case FocusDelayed:
		m.focus = registration
		m.logger.Debug("audio focus delayed", slog.String("session", m.session.ID))
	default:
		m.transition(StateIdle, ReasonFocusDenied)
		m.session = Session{}
	}
}

// Teardown releases the clip and abandons focus regardless of the current state.
// It is a no-op when nothing is held.
func (m *Manager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release(ReasonTeardown)
}

// OnFocusChange implements FocusListener. The change applies to the current session.
func (m *Manager) OnFocusChange(change FocusChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyFocusChange(change)
}

func (m *Manager) focusChanged(registration *focusRegistration, change FocusChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.focus != registration {
		m.logger.Debug("ignored a focus change for an abandoned request", slog.String("change", change.String()))
		return
	}
	m.applyFocusChange(change)
}

func (m *Manager) applyFocusChange(change FocusChange) {
	m.logger.Debug("audio focus changed",
		slog.String("session", m.session.ID),
		slog.String("change", change.String()),
		slog.String("state", m.session.State.String()),
	)
	switch change {
	case FocusGain, FocusGainTransient:
		switch m.session.State {
		case StateFocusRequested:
			m.grant()
		case StatePaused:
			m.resume()
		}
	case FocusLoss:
		m.release(ReasonFocusLost)
	case FocusLossTransient, FocusLossTransientCanDuck:
		m.pause()
	}
}

// OnFocusGranted starts the clip of a session waiting for focus.
func (m *Manager) OnFocusGranted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.State == StateFocusRequested {
		m.grant()
	}
}

// OnFocusLostPermanently ends the current session.
func (m *Manager) OnFocusLostPermanently() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release(ReasonFocusLost)
}

// OnFocusLostTransient pauses the clip and rewinds it to the start.
// Ducking is not supported, so duckable is only logged.
func (m *Manager) OnFocusLostTransient(duckable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger.Debug("transient audio focus loss",
		slog.String("session", m.session.ID),
		slog.Bool("duckable", duckable),
	)
	m.pause()
}

// OnFocusRegainedTransient restarts a paused clip from the start.
func (m *Manager) OnFocusRegainedTransient() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.State == StatePaused {
		m.resume()
	}
}

// OnClipFinished ends the current session when its clip is playing.
func (m *Manager) OnClipFinished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.State == StatePlaying {
		m.release(ReasonClipFinished)
	}
}

func (m *Manager) clipFinished(sessionID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.ID != sessionID {
		m.logger.Debug("ignored completion of a stale clip", slog.String("session", sessionID))
		return
	}
	if m.session.State != StatePlaying {
		return
	}
	if err != nil {
		m.logger.Warn("clip playback failed",
			slog.String("session", sessionID),
			slog.String("clip", m.session.Entry.Clip),
			slog.Any("error", err),
		)
		m.release(ReasonClipFailed)
		return
	}
	m.release(ReasonClipFinished)
}

func (m *Manager) grant() {
	m.session.FocusHeld = true

	clip, err := m.loader.Load(m.session.Entry.Clip)
	if err != nil {
		m.logger.Warn("failed to load a clip",
			slog.String("session", m.session.ID),
			slog.String("clip", m.session.Entry.Clip),
			slog.Any("error", err),
		)
		m.release(ReasonLoadFailed)
		return
	}
	m.clip = clip

	sessionID := m.session.ID
	clip.OnCompletion(func(err error) {
		m.clipFinished(sessionID, err)
	})
	if err := clip.Start(); err != nil {
		m.logger.Warn("failed to start a clip",
			slog.String("session", m.session.ID),
			slog.String("clip", m.session.Entry.Clip),
			slog.Any("error", err),
		)
		m.release(ReasonLoadFailed)
		return
	}
	m.transition(StatePlaying, ReasonFocusGranted)
}

func (m *Manager) pause() {
	if m.session.State != StatePlaying {
		return
	}
	m.session.FocusHeld = false
	if err := m.clip.Pause(); err != nil {
		m.logger.Debug("failed to pause a clip", slog.Any("error", err))
	}
	if err := m.clip.SeekToStart(); err != nil {
		m.logger.Debug("failed to rewind a clip", slog.Any("error", err))
	}
	m.transition(StatePaused, ReasonFocusLostTransient)
}

func (m *Manager) resume() {
	m.session.FocusHeld = true
	if err := m.clip.Start(); err != nil {
		m.logger.Warn("failed to resume a clip",
			slog.String("session", m.session.ID),
			slog.Any("error", err),
		)
		m.release(ReasonLoadFailed)
		return
	}
	m.transition(StatePlaying, ReasonFocusRegained)
}

// release frees the clip and abandons focus. Each resource is released at most once.
func (m *Manager) release(reason Reason) {
	if m.clip != nil {
		if err := m.clip.Release(); err != nil {
			m.logger.Debug("failed to release a clip", slog.Any("error", err))
		}
		m.clip = nil
	}
	if m.focus != nil {
		m.arbiter.AbandonFocus(m.focus)
		m.focus = nil
	}
	m.session.FocusHeld = false
	if m.session.State != StateIdle {
		m.transition(StateIdle, reason)
		m.session = Session{}
	}
}

func (m *Manager) transition(to State, reason Reason) {
	from := m.session.State
	m.session.State = to

	t := Transition{
		SessionID: m.session.ID,
		Entry:     m.session.Entry,
		From:      from,
		To:        to,
		Reason:    reason,
		At:        m.now(),
	}
	m.logger.Debug("playback transition",
		slog.String("session", t.SessionID),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("reason", string(reason)),
	)
	for _, observer := range m.observers {
		observer.OnTransition(t)
	}
}
