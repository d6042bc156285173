package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/clock"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

var latchEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestKeyLatchFirstPressIsEdge(t *testing.T) {
	c := clock.NewManual(latchEpoch)
	l := NewKeyLatch(c)

	if !l.Press(core.KeyW) {
		t.Error("first press should be a key-down edge")
	}
	c.Advance(30 * time.Millisecond)
	if l.Press(core.KeyW) {
		t.Error("repeat should not be a new key-down")
	}
	if !l.Held(core.KeyW) {
		t.Error("key should be held")
	}
}

func TestKeyLatchInitialGraceCoversRepeatDelay(t *testing.T) {
	c := clock.NewManual(latchEpoch)
	l := NewKeyLatch(c)

	l.Press(core.KeyArrowUp)

	// Typical keyboards wait ~500ms before the first repeat
	c.Advance(DefaultInitialGrace - time.Millisecond)
	if released := l.Expire(); len(released) != 0 {
		t.Errorf("key released before the first repeat could arrive: %v", released)
	}

	c.Advance(time.Millisecond)
	if released := l.Expire(); !reflect.DeepEqual(released, []core.Key{core.KeyArrowUp}) {
		t.Errorf("Expire() = %v, expected [arrowup]", released)
	}
	if l.Held(core.KeyArrowUp) {
		t.Error("released key should no longer be held")
	}
}

func TestKeyLatchRepeatsShortenGrace(t *testing.T) {
	c := clock.NewManual(latchEpoch)
	l := NewKeyLatch(c)

	l.Press(core.KeyS)
	c.Advance(500 * time.Millisecond)
	l.Press(core.KeyS) // first repeat

	c.Advance(DefaultRepeatGrace - time.Millisecond)
	if len(l.Expire()) != 0 {
		t.Error("key released inside the repeat window")
	}

	c.Advance(time.Millisecond)
	if len(l.Expire()) != 1 {
		t.Error("key should be released once repeats stop")
	}
}

func TestKeyLatchTapKeys(t *testing.T) {
	c := clock.NewManual(latchEpoch)
	l := NewKeyLatch(c, core.KeySpace)

	l.Press(core.KeySpace)
	c.Advance(DefaultRepeatGrace)
	if released := l.Expire(); len(released) != 1 {
		t.Fatalf("tap key should release after the repeat window, got %v", released)
	}

	c.Advance(10 * time.Millisecond)
	if !l.Press(core.KeySpace) {
		t.Error("second tap should be a new key-down")
	}
}

func TestKeyLatchReleaseAllSorted(t *testing.T) {
	l := NewKeyLatch(clock.NewManual(latchEpoch))

	l.Press(core.KeyW)
	l.Press(core.KeyArrowDown)
	l.Press(core.KeyS)

	got := l.ReleaseAll()
	want := []core.Key{core.KeyArrowDown, core.KeyS, core.KeyW}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReleaseAll() = %v, expected %v", got, want)
	}
	if len(l.Expire()) != 0 || l.Held(core.KeyW) {
		t.Error("nothing should be held after ReleaseAll")
	}
}

func TestKeyLatchIgnoresEmptyKey(t *testing.T) {
	l := NewKeyLatch(clock.NewManual(latchEpoch))

	if l.Press(core.KeyNone) {
		t.Error("empty key should never latch")
	}
}

func TestKeyLatchSetGrace(t *testing.T) {
	c := clock.NewManual(latchEpoch)
	l := NewKeyLatch(c)
	l.SetGrace(50*time.Millisecond, 10*time.Millisecond)

	l.Press(core.KeyW)
	c.Advance(50 * time.Millisecond)
	if len(l.Expire()) != 1 {
		t.Error("custom initial grace not applied")
	}
}
