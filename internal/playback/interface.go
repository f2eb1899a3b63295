package playback

//go:generate mockgen -source=interface.go -destination=../mocks/playback/mock_interface.go -package=mock_playback

// FocusArbiter grants exclusive playback rights on the shared audio device.
type FocusArbiter interface {
	RequestTransientFocus(listener FocusListener) FocusResult
	AbandonFocus(listener FocusListener)
}

// FocusListener receives focus changes from a FocusArbiter.
type FocusListener interface {
	OnFocusChange(change FocusChange)
}

// ClipLoader loads the pronunciation clip for a clip handle.
type ClipLoader interface {
	Load(handle string) (Clip, error)
}

// Clip is a single loaded audio clip.
// Release must be safe to call more than once.
// The completion callback receives a non-nil error when playback stopped on a failure.
type Clip interface {
	Start() error
	Pause() error
	SeekToStart() error
	Release() error
	OnCompletion(callback func(err error))
}

// Observer is notified of every session transition.
// It is called while the manager is locked and must not call back into the manager.
type Observer interface {
	OnTransition(transition Transition)
}
