package cli

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/miwok/internal/playback"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

// IdleWaiter is a playback.Observer that reports when a session ends.
type IdleWaiter struct {
	idle chan playback.Transition
}

func NewIdleWaiter() *IdleWaiter {
	return &IdleWaiter{
		idle: make(chan playback.Transition, 1),
	}
}

// OnTransition implements playback.Observer. Only the first end of a session is kept.
func (w *IdleWaiter) OnTransition(t playback.Transition) {
	if t.To != playback.StateIdle {
		return
	}
	select {
	case w.idle <- t:
	default:
	}
}

// Wait blocks until a session ends or ctx is done.
func (w *IdleWaiter) Wait(ctx context.Context) (playback.Transition, error) {
	select {
	case t := <-w.idle:
		return t, nil
	case <-ctx.Done():
		return playback.Transition{}, ctx.Err()
	}
}

// PlayEntry plays a single entry and returns why its session ended.
// The player is torn down when ctx is done first.
func PlayEntry(ctx context.Context, player Player, waiter *IdleWaiter, entry vocabulary.Entry) (playback.Reason, error) {
	player.SelectEntry(entry)

	t, err := waiter.Wait(ctx)
	if err != nil {
		player.Teardown()
		return playback.ReasonTeardown, nil
	}
	switch t.Reason {
	case playback.ReasonFocusDenied:
		return t.Reason, fmt.Errorf("audio focus was denied for %s", entry.Clip)
	case playback.ReasonLoadFailed:
		return t.Reason, fmt.Errorf("failed to play the clip %s", entry.Clip)
	case playback.ReasonClipFailed:
		return t.Reason, fmt.Errorf("the player stopped with an error while playing %s", entry.Clip)
	}
	return t.Reason, nil
}
