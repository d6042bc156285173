package multiplayer

import (
	"strconv"
	"testing"
	"time"
)

func TestModeForGame(t *testing.T) {
	tests := []struct {
		gameID   string
		expected MatchMode
	}{
		{"pong", MatchModeLocalVersus},
		{"pong_cpu", MatchModeVsCPU},
		{"invaders", MatchModeSolo},
		{"unknown", MatchModeSolo},
	}

	for _, tc := range tests {
		t.Run(tc.gameID, func(t *testing.T) {
			if got := ModeForGame(tc.gameID); got != tc.expected {
				t.Errorf("ModeForGame(%q) = %v, expected %v", tc.gameID, got, tc.expected)
			}
		})
	}
}

func TestMatchFinish(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMatch("pong", "sess-1", start)

	if m.ID() != "match-pong-"+MatchID(strconv.FormatInt(start.UnixNano(), 10)) {
		t.Errorf("unexpected match ID %q", m.ID())
	}

	res := m.Finish(3, 5, EndReasonQuit, start.Add(90*time.Second))

	if res.Winner != Player2 {
		t.Errorf("expected Player2 to win, got %v", res.Winner)
	}
	if res.Duration != 90*time.Second {
		t.Errorf("expected 90s duration, got %v", res.Duration)
	}
	if res.Mode != MatchModeLocalVersus || res.Session != "sess-1" || res.Reason != EndReasonQuit {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMatchFinishTieAndSolo(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tie := NewMatch("pong_cpu", LocalSession, start).Finish(2, 2, EndReasonReset, start)
	if tie.Winner != PlayerNone {
		t.Errorf("tie should have no winner, got %v", tie.Winner)
	}

	solo := NewMatch("invaders", LocalSession, start).Finish(500, 0, EndReasonCompleted, start)
	if solo.Winner != PlayerNone {
		t.Errorf("solo match should have no winner, got %v", solo.Winner)
	}
}

func TestMatchDurationNeverNegative(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMatch("pong", LocalSession, start)

	if d := m.Duration(start.Add(-time.Minute)); d != 0 {
		t.Errorf("expected 0 for a clock that went backwards, got %v", d)
	}
}

func TestEndReasonString(t *testing.T) {
	if EndReasonCompleted.String() != "completed" || EndReasonQuit.String() != "quit" || EndReasonReset.String() != "reset" {
		t.Error("unexpected end reason names")
	}
}
