package core

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw      string
		expected Key
	}{
		{"w", KeyW},
		{"W", KeyW},
		{"S", KeyS},
		{"ArrowUp", KeyArrowUp},
		{"up", KeyArrowUp},
		{"down", KeyArrowDown},
		{"ArrowLeft", KeyArrowLeft},
		{"right", KeyArrowRight},
		{" ", KeySpace},
		{"Space", KeySpace},
		{"F5", Key("f5")},
		{"", KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			if got := NormalizeKey(tc.raw); got != tc.expected {
				t.Errorf("NormalizeKey(%q) = %q, expected %q", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}
