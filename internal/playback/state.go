package playback

import (
	"time"

	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

type State int

const (
	StateIdle State = iota
	StateFocusRequested
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFocusRequested:
		return "focus_requested"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

type FocusResult int

const (
	FocusDenied FocusResult = iota
	FocusGranted
	// FocusDelayed means the request is queued and FocusGain is delivered later.
	FocusDelayed
)

func (r FocusResult) String() string {
	switch r {
	case FocusDenied:
		return "denied"
	case FocusGranted:
		return "granted"
	case FocusDelayed:
		return "delayed"
	default:
		return "unknown"
	}
}

type FocusChange int

const (
	FocusGain FocusChange = iota + 1
	FocusGainTransient
	FocusLoss
	FocusLossTransient
	FocusLossTransientCanDuck
)

func (c FocusChange) String() string {
	switch c {
	case FocusGain:
		return "gain"
	case FocusGainTransient:
		return "gain_transient"
	case FocusLoss:
		return "loss"
	case FocusLossTransient:
		return "loss_transient"
	case FocusLossTransientCanDuck:
		return "loss_transient_can_duck"
	default:
		return "unknown"
	}
}

// Reason explains why a transition happened.
type Reason string

const (
	ReasonSelected           Reason = "selected"
	ReasonFocusGranted       Reason = "focus_granted"
	ReasonFocusDenied        Reason = "focus_denied"
	ReasonFocusLost          Reason = "focus_lost"
	ReasonFocusLostTransient Reason = "focus_lost_transient"
	ReasonFocusRegained      Reason = "focus_regained"
	ReasonClipFinished       Reason = "clip_finished"
	ReasonClipFailed         Reason = "clip_failed"
	ReasonPreempted          Reason = "preempted"
	ReasonTeardown           Reason = "teardown"
	ReasonLoadFailed         Reason = "load_failed"
)

// Session is a snapshot of the playback session owned by a Manager.
type Session struct {
	ID         string
	Entry      vocabulary.Entry
	State      State
	FocusHeld  bool
	ClipLoaded bool
}

type Transition struct {
	SessionID string
	Entry     vocabulary.Entry
	From      State
	To        State
	Reason    Reason
	At        time.Time
}
