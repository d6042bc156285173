package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "GAME", core.ColorRed)
	s.DrawTextColored(0, 1, "OVER", core.ColorRed)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "GAME") || !strings.Contains(lines[1], "OVER") {
		t.Errorf("rendered text lost: %q", out)
	}
}

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "PONG")
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	path, err := writeScreenshot(dir, "pong", s, at)
	if err != nil {
		t.Fatalf("writeScreenshot() failed: %v", err)
	}

	if filepath.Base(path) != "pong_20240309_140506.txt" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}
	if string(data) != s.String() {
		t.Errorf("screenshot = %q, expected %q", data, s.String())
	}
}
