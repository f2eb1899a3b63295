// Package audio provides the device-side collaborators of the playback manager:
// an in-process audio focus arbiter and a clip loader backed by an external player.
package audio

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/at-ishikawa/miwok/internal/playback"
)

// Gain is the kind of focus a listener asks for.
type Gain int

const (
	GainTransient Gain = iota
	GainTransientMayDuck
	GainPermanent
	// GainTransientExclusive blocks every other request until it is abandoned.
	GainTransientExclusive
)

// holder is one registration of a listener. A new request always creates a new holder,
// and notifications for a holder that is no longer registered are dropped at dispatch.
// A replacement during an in-flight delivery is not detected, so a listener that needs
// exact delivery registers a new listener value per request.
type holder struct {
	listener playback.FocusListener
	gain     Gain
}

type notification struct {
	holder *holder
	change playback.FocusChange
}

// Arbiter mediates audio focus between listeners in the same process.
//
// Holders form a stack: a new request notifies the current top and is pushed, and
// abandoning the top returns focus to the holder below it. Notifications are delivered
// in order outside the arbiter's lock, on a dispatch goroutine unless WithSyncDelivery is set.
type Arbiter struct {
	delayedGrants bool
	syncDelivery  bool
	logger        *slog.Logger

	mu            sync.Mutex
	holders       []*holder
	pending       []*holder
	registrations map[playback.FocusListener]*holder

	queueMu sync.Mutex
	queue   []notification
	cond    *sync.Cond
	closed  bool
	done    chan struct{}
}

type ArbiterOption func(*Arbiter)

// WithDelayedGrants queues requests blocked by an exclusive holder instead of denying them.
func WithDelayedGrants() ArbiterOption {
	return func(a *Arbiter) {
		a.delayedGrants = true
	}
}

// WithSyncDelivery delivers notifications on the calling goroutine after the arbiter is unlocked.
func WithSyncDelivery() ArbiterOption {
	return func(a *Arbiter) {
		a.syncDelivery = true
	}
}

func WithArbiterLogger(logger *slog.Logger) ArbiterOption {
	return func(a *Arbiter) {
		a.logger = logger
	}
}

func NewArbiter(options ...ArbiterOption) *Arbiter {
	a := &Arbiter{
		logger:        slog.Default(),
		registrations: make(map[playback.FocusListener]*holder),
		done:          make(chan struct{}),
	}
	a.cond = sync.NewCond(&a.queueMu)
	for _, option := range options {
		option(a)
	}
	if a.syncDelivery {
		close(a.done)
	} else {
		go a.dispatch()
	}
	return a
}

// RequestTransientFocus implements playback.FocusArbiter.
func (a *Arbiter) RequestTransientFocus(listener playback.FocusListener) playback.FocusResult {
	return a.RequestFocus(listener, GainTransient)
}

// RequestFocus asks for focus of the given kind.
// A listener that already holds focus replaces its previous registration.
func (a *Arbiter) RequestFocus(listener playback.FocusListener, gain Gain) playback.FocusResult {
	a.mu.Lock()
	var notifications []notification
	result := a.request(listener, gain, &notifications)
	a.mu.Unlock()

	a.logger.Debug("audio focus requested",
		slog.Int("gain", int(gain)),
		slog.String("result", result.String()),
	)
	a.deliver(notifications)
	return result
}

func (a *Arbiter) request(listener playback.FocusListener, gain Gain, notifications *[]notification) playback.FocusResult {
	a.remove(listener)

	requested := &holder{listener: listener, gain: gain}
	if top := a.top(); top != nil && top.gain == GainTransientExclusive {
		if a.delayedGrants {
			a.registrations[listener] = requested
			a.pending = append(a.pending, requested)
			return playback.FocusDelayed
		}
		return playback.FocusDenied
	}

	a.registrations[listener] = requested
	a.push(requested, notifications)
	return playback.FocusGranted
}

// AbandonFocus implements playback.FocusArbiter. Abandoning without holding focus is a no-op.
func (a *Arbiter) AbandonFocus(listener playback.FocusListener) {
	a.mu.Lock()
	var notifications []notification
	wasTop := a.remove(listener)
	if wasTop {
		a.promote(&notifications)
	}
	a.mu.Unlock()

	a.deliver(notifications)
}

// Holders returns the number of listeners currently holding or waiting for focus.
func (a *Arbiter) Holders() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.holders) + len(a.pending)
}

// Close stops the dispatch goroutine. Undelivered notifications are dropped.
func (a *Arbiter) Close() {
	if a.syncDelivery {
		return
	}
	a.queueMu.Lock()
	if !a.closed {
		a.closed = true
		a.cond.Broadcast()
	}
	a.queueMu.Unlock()
	<-a.done
}

func (a *Arbiter) push(requested *holder, notifications *[]notification) {
	if top := a.top(); top != nil {
		switch requested.gain {
		case GainPermanent:
			for _, h := range a.holders {
				*notifications = append(*notifications, notification{holder: h, change: playback.FocusLoss})
			}
			a.holders = nil
		case GainTransientMayDuck:
			*notifications = append(*notifications, notification{holder: top, change: playback.FocusLossTransientCanDuck})
		default:
			*notifications = append(*notifications, notification{holder: top, change: playback.FocusLossTransient})
		}
	}
	a.holders = append(a.holders, requested)
}

// promote hands focus to the next listener after the top holder left.
// Delayed requests are granted first, then the holder below regains focus.
func (a *Arbiter) promote(notifications *[]notification) {
	if top := a.top(); len(a.pending) > 0 && (top == nil || top.gain != GainTransientExclusive) {
		next := a.pending[0]
		a.pending = a.pending[1:]
		a.push(next, notifications)
		*notifications = append(*notifications, notification{holder: next, change: playback.FocusGain})
		return
	}
	if top := a.top(); top != nil {
		*notifications = append(*notifications, notification{holder: top, change: playback.FocusGainTransient})
	}
}

// remove unregisters listener and reports whether it was the top holder.
func (a *Arbiter) remove(listener playback.FocusListener) bool {
	delete(a.registrations, listener)
	a.pending = slices.DeleteFunc(a.pending, func(h *holder) bool {
		return h.listener == listener
	})

	index := slices.IndexFunc(a.holders, func(h *holder) bool {
		return h.listener == listener
	})
	if index < 0 {
		return false
	}
	wasTop := index == len(a.holders)-1
	a.holders = slices.Delete(a.holders, index, index+1)
	return wasTop
}

func (a *Arbiter) top() *holder {
	if len(a.holders) == 0 {
		return nil
	}
	return a.holders[len(a.holders)-1]
}

func (a *Arbiter) deliver(notifications []notification) {
	if len(notifications) == 0 {
		return
	}
	if a.syncDelivery {
		for _, n := range notifications {
			a.notify(n)
		}
		return
	}

	a.queueMu.Lock()
	defer a.queueMu.Unlock()
	if a.closed {
		return
	}
	a.queue = append(a.queue, notifications...)
	a.cond.Signal()
}

func (a *Arbiter) dispatch() {
	defer close(a.done)
	for {
		a.queueMu.Lock()
		for len(a.queue) == 0 && !a.closed {
			a.cond.Wait()
		}
		if a.closed {
			a.queueMu.Unlock()
			return
		}
		n := a.queue[0]
		a.queue = a.queue[1:]
		a.queueMu.Unlock()

		a.notify(n)
	}
}

func (a *Arbiter) notify(n notification) {
	a.mu.Lock()
	current := a.registrations[n.holder.listener] == n.holder
	a.mu.Unlock()
	if !current {
		return
	}
	n.holder.listener.OnFocusChange(n.change)
}
