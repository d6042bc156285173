package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/clock"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Grace windows for synthesized key releases. Terminals send a press and
// then, after the keyboard's repeat delay, a stream of repeats; they never
// send a release.
const (
	DefaultInitialGrace = 550 * time.Millisecond
	DefaultRepeatGrace  = 120 * time.Millisecond
)

// KeyLatch turns the press/repeat stream of a terminal into key-down and
// key-up edges. A key stays held while presses keep arriving and is released
// once its grace window passes without one.
type KeyLatch struct {
	clock   clock.Clock
	initial time.Duration
	repeat  time.Duration
	taps    map[core.Key]bool
	held    map[core.Key]time.Time
}

// NewKeyLatch creates a latch with the default grace windows.
// Tap keys skip the long initial window so quick successive presses
// register as separate presses.
func NewKeyLatch(c clock.Clock, taps ...core.Key) *KeyLatch {
	if c == nil {
		c = clock.RealClock{}
	}
	l := &KeyLatch{
		clock:   c,
		initial: DefaultInitialGrace,
		repeat:  DefaultRepeatGrace,
		taps:    make(map[core.Key]bool, len(taps)),
		held:    make(map[core.Key]time.Time),
	}
	for _, k := range taps {
		l.taps[k] = true
	}
	return l
}

// SetGrace overrides the grace windows.
func (l *KeyLatch) SetGrace(initial, repeat time.Duration) {
	l.initial = initial
	l.repeat = repeat
}

// Press records a press or an auto-repeat of k.
// It reports true when k was not held before, i.e. a key-down edge.
func (l *KeyLatch) Press(k core.Key) bool {
	if k == core.KeyNone {
		return false
	}

	now := l.clock.Now()
	if _, ok := l.held[k]; ok {
		l.held[k] = now.Add(l.repeat)
		return false
	}

	grace := l.initial
	if l.taps[k] {
		grace = l.repeat
	}
	l.held[k] = now.Add(grace)
	return true
}

// Held reports whether k is currently latched.
func (l *KeyLatch) Held(k core.Key) bool {
	_, ok := l.held[k]
	return ok
}

// Expire releases every key whose grace window has passed and returns them
// in a stable order.
func (l *KeyLatch) Expire() []core.Key {
	now := l.clock.Now()
	var released []core.Key
	for k, deadline := range l.held {
		if !now.Before(deadline) {
			released = append(released, k)
			delete(l.held, k)
		}
	}
	slices.Sort(released)
	return released
}

// ReleaseAll releases every held key.
func (l *KeyLatch) ReleaseAll() []core.Key {
	released := make([]core.Key, 0, len(l.held))
	for k := range l.held {
		released = append(released, k)
	}
	clear(l.held)
	slices.Sort(released)
	return released
}
