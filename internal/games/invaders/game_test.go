package invaders

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// newTestGame returns a reset game whose aliens never fire unless
// the caller changes the config.
func newTestGame(modify ...func(*config.InvadersConfig)) *Game {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.FireChance = 0
	for _, m := range modify {
		m(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	return g
}

func TestReset(t *testing.T) {
	g := newTestGame()

	if g.ship != core.NewBox(380, 560, 40, 20) {
		t.Errorf("unexpected ship %+v", g.ship)
	}
	if len(g.aliens) != 50 || g.AliveCount() != 50 {
		t.Fatalf("expected 50 live aliens, got %d/%d", g.AliveCount(), len(g.aliens))
	}
	if g.aliens[0].Box != core.NewBox(50, 50, 30, 20) {
		t.Errorf("first alien at %+v", g.aliens[0].Box)
	}
	if last := g.aliens[49]; last.X != 410 || last.Y != 170 || last.Type != 4 {
		t.Errorf("last alien at (%v, %v) type %d", last.X, last.Y, last.Type)
	}
	if g.Lives() != 3 || g.State().Score != 0 || g.Wave() != 1 {
		t.Errorf("unexpected counters: lives=%d score=%d wave=%d", g.Lives(), g.State().Score, g.Wave())
	}
	if g.State().Mode != core.ModeRunning {
		t.Errorf("expected running, got %v", g.State().Mode)
	}
}

func TestBulletHitsSingleAlien(t *testing.T) {
	g := newTestGame()
	target := g.aliens[7]
	g.playerBullets = []bullet{{Box: target.Box, DY: -7}}

	g.checkCollisions()

	if g.aliens[7].Alive {
		t.Error("alien #7 should be dead")
	}
	if len(g.playerBullets) != 0 {
		t.Errorf("bullet should be removed, %d left", len(g.playerBullets))
	}
	if g.score != points(target.Type) {
		t.Errorf("score = %d, expected %d", g.score, points(target.Type))
	}
	for i, a := range g.aliens {
		if i != 7 && !a.Alive {
			t.Errorf("alien #%d should be unaffected", i)
		}
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		alienType int
		expected  int
	}{
		{0, 50},
		{1, 40},
		{2, 30},
		{3, 20},
		{4, 10},
	}

	for _, tc := range tests {
		g := newTestGame()
		idx := tc.alienType * 10
		g.playerBullets = []bullet{{Box: g.aliens[idx].Box}}

		g.checkCollisions()

		if g.score != tc.expected {
			t.Errorf("type %d: score = %d, expected %d", tc.alienType, g.score, tc.expected)
		}
	}
}

func TestFirstAlienInGridOrderWins(t *testing.T) {
	g := newTestGame()
	// Tall bullet spanning the first two rows of column 0
	g.playerBullets = []bullet{{Box: core.NewBox(60, 55, 4, 30)}}

	g.checkCollisions()

	if g.aliens[0].Alive || !g.aliens[10].Alive {
		t.Error("bullet should take the alien earlier in grid order only")
	}
}

func TestNewestBulletResolvedFirst(t *testing.T) {
	g := newTestGame()
	target := g.aliens[3].Box
	older := bullet{Box: target}
	newer := bullet{Box: core.NewBox(target.X+1, target.Y+1, 4, 10)}
	g.playerBullets = []bullet{older, newer}

	g.checkCollisions()

	if len(g.playerBullets) != 1 || g.playerBullets[0] != older {
		t.Errorf("newest bullet should have taken the alien, left %+v", g.playerBullets)
	}
}

func TestDeadAliensIgnored(t *testing.T) {
	g := newTestGame()
	g.aliens[7].Alive = false
	dead := g.aliens[7]
	g.playerBullets = []bullet{{Box: dead.Box}}

	g.checkCollisions()

	if len(g.playerBullets) != 1 || g.score != 0 {
		t.Error("bullet over a dead alien should pass through")
	}

	g.playerBullets = nil
	g.updateAliens()
	if g.aliens[7].Box != dead.Box {
		t.Error("dead alien should not move")
	}

	surf := &recordingSurface{}
	g.Render(surf)
	for _, c := range surf.calls {
		if c.op == "rect" && c.box == dead.Box {
			t.Error("dead alien should not be drawn")
		}
	}
}

func TestFormationMovesSideways(t *testing.T) {
	g := newTestGame()

	g.updateAliens()

	if g.aliens[0].X != 51 || g.aliens[0].Y != 50 {
		t.Errorf("expected first alien at (51, 50), got (%v, %v)", g.aliens[0].X, g.aliens[0].Y)
	}
}

func TestFormationDropsAtEdge(t *testing.T) {
	g := newTestGame()
	shiftAliens(g, 360) // column 9 right edge now at 800

	before := make([]alien, len(g.aliens))
	copy(before, g.aliens)

	g.updateAliens()

	if g.direction != -1 {
		t.Fatalf("direction should flip to -1, got %v", g.direction)
	}
	for i, a := range g.aliens {
		if a.X != before[i].X || a.Y != before[i].Y+20 {
			t.Fatalf("alien #%d: expected drop only, (%v, %v) -> (%v, %v)", i, before[i].X, before[i].Y, a.X, a.Y)
		}
	}

	// Next tick moves left, no second drop
	g.updateAliens()
	if g.direction != -1 || g.aliens[0].X != before[0].X-1 || g.aliens[0].Y != before[0].Y+20 {
		t.Errorf("expected a single drop then leftward motion, got %+v dir=%v", g.aliens[0].Box, g.direction)
	}
}

func TestFormationEdgeIgnoresDeadAliens(t *testing.T) {
	g := newTestGame()
	for row := range 5 {
		g.aliens[row*10+9].Alive = false
	}
	shiftAliens(g, 370) // dead column 9 would be past the edge, column 8 is not

	g.updateAliens()

	if g.direction != 1 {
		t.Errorf("dead aliens should not trigger a drop")
	}
	if g.aliens[8].X != 50+8*40+370+1 {
		t.Errorf("formation should keep moving right, alien #8 at %v", g.aliens[8].X)
	}
}

func TestFormationDropsAtLeftEdge(t *testing.T) {
	g := newTestGame()
	g.direction = -1
	shiftAliens(g, -50) // column 0 at x=0

	g.updateAliens()

	if g.direction != 1 || g.aliens[0].Y != 70 || g.aliens[0].X != 0 {
		t.Errorf("expected drop at the left edge, got %+v dir=%v", g.aliens[0].Box, g.direction)
	}
}

func shiftAliens(g *Game, dx float64) {
	for i := range g.aliens {
		g.aliens[i].X += dx
	}
}

func TestAlienBulletCostsLife(t *testing.T) {
	g := newTestGame()
	g.alienBullets = []bullet{
		{Box: core.NewBox(390, 565, 4, 10), DY: 3},
		{Box: core.NewBox(395, 565, 4, 10), DY: 3},
	}

	g.Step()

	if g.Lives() != 2 {
		t.Errorf("one hit per tick: expected 2 lives, got %d", g.Lives())
	}
	if len(g.alienBullets) != 1 {
		t.Errorf("expected one bullet left, got %d", len(g.alienBullets))
	}
	if g.State().Mode != core.ModeRunning {
		t.Errorf("game should continue with lives left")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newTestGame(func(c *config.InvadersConfig) { c.Gameplay.Lives = 1 })
	g.playerBullets = []bullet{{Box: core.NewBox(100, 300, 4, 10), DY: -7}}
	g.alienBullets = []bullet{{Box: core.NewBox(390, 565, 4, 10), DY: 3}}

	res := g.Step()

	if g.Lives() != 0 {
		t.Errorf("expected 0 lives, got %d", g.Lives())
	}
	if res.State.Mode != core.ModeGameOver {
		t.Fatalf("expected game over, got %v", res.State.Mode)
	}

	frozen := g.Snapshot()
	for range 20 {
		g.KeyDown(core.KeyArrowLeft)
		g.Step()
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("game over should freeze aliens and bullets")
	}

	g.TogglePause()
	if g.State().Mode != core.ModeGameOver {
		t.Errorf("pause should not leave game over, got %v", g.State().Mode)
	}

	g.Reset(testRuntime)
	if g.State().Mode != core.ModeRunning || g.Lives() != 1 {
		t.Errorf("reset should restart, got %v with %d lives", g.State().Mode, g.Lives())
	}
}

func TestAliensReachingShipEndGame(t *testing.T) {
	g := newTestGame()
	g.aliens[45].Y = 540 // bottom at 560, the ship's top

	g.checkCollisions()

	if g.State().Mode != core.ModeGameOver {
		t.Errorf("expected game over, got %v", g.State().Mode)
	}
	if g.Lives() != 3 {
		t.Errorf("invasion should not touch lives, got %d", g.Lives())
	}
}

func TestDeadAlienAtShipRowIgnored(t *testing.T) {
	g := newTestGame()
	g.aliens[45].Y = 540
	g.aliens[45].Alive = false

	g.checkCollisions()

	if g.State().Mode != core.ModeRunning {
		t.Errorf("dead alien should not end the game")
	}
}

func TestWaveClearRespawnsLower(t *testing.T) {
	g := newTestGame()

	clearWave := func() {
		for i := range g.aliens {
			g.aliens[i].Alive = false
		}
		g.aliens[0].Alive = true
		g.playerBullets = []bullet{{Box: g.aliens[0].Box}}
		g.checkCollisions()
	}

	clearWave()
	if g.Wave() != 2 || g.AliveCount() != 50 {
		t.Fatalf("expected wave 2 with 50 aliens, got wave %d with %d", g.Wave(), g.AliveCount())
	}
	if g.aliens[0].Y != 70 || g.aliens[0].X != 50 {
		t.Errorf("wave 2 should start at (50, 70), got (%v, %v)", g.aliens[0].X, g.aliens[0].Y)
	}

	clearWave()
	if g.aliens[0].Y != 90 {
		t.Errorf("wave 3 should start 40 lower than wave 1, got y=%v", g.aliens[0].Y)
	}
	if g.Status() != "Wave 3" {
		t.Errorf("Status() = %q", g.Status())
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	g := newTestGame()

	g.KeyDown(core.KeySpace)
	g.KeyDown(core.KeySpace) // auto-repeat
	g.Step()
	g.Step()

	if len(g.playerBullets) != 1 {
		t.Fatalf("holding fire should shoot once, got %d bullets", len(g.playerBullets))
	}

	g.KeyUp(core.KeySpace)
	g.KeyDown(core.KeySpace)
	g.Step()

	if len(g.playerBullets) != 2 {
		t.Errorf("a new press should shoot again, got %d bullets", len(g.playerBullets))
	}
}

func TestShotLeavesShipTopCenter(t *testing.T) {
	g := newTestGame()

	g.KeyDown(core.KeySpace)
	g.Step()

	b := g.playerBullets[0]
	if b.X != 398 || b.Y != 553 || b.W != 4 || b.H != 10 {
		t.Errorf("unexpected bullet %+v", b.Box)
	}
}

func TestShipClamped(t *testing.T) {
	g := newTestGame()

	g.KeyDown(core.KeyArrowLeft)
	for range 100 {
		g.Step()
		if g.ship.X < 0 {
			t.Fatalf("ship left the field: x=%v", g.ship.X)
		}
	}
	if g.ship.X != 0 {
		t.Errorf("expected ship at 0, got %v", g.ship.X)
	}

	g.KeyUp(core.KeyArrowLeft)
	g.KeyDown(core.KeyArrowRight)
	for range 200 {
		g.Step()
		if g.ship.X > 760 {
			t.Fatalf("ship left the field: x=%v", g.ship.X)
		}
	}
	if g.ship.X != 760 {
		t.Errorf("expected ship at 760, got %v", g.ship.X)
	}
}

func TestBulletsLeaveField(t *testing.T) {
	g := newTestGame()
	g.playerBullets = []bullet{{Box: core.NewBox(700, 3, 4, 10), DY: -7}}
	g.alienBullets = []bullet{{Box: core.NewBox(700, 598, 4, 10), DY: 3}}

	g.updateBullets()

	if len(g.playerBullets) != 0 || len(g.alienBullets) != 0 {
		t.Errorf("off-field bullets should be dropped: %d player, %d alien", len(g.playerBullets), len(g.alienBullets))
	}
}

func TestAlienFire(t *testing.T) {
	g := newTestGame(func(c *config.InvadersConfig) { c.Aliens.FireChance = 1 })

	g.updateAliens()

	if len(g.alienBullets) != 1 {
		t.Fatalf("expected one alien bullet, got %d", len(g.alienBullets))
	}
	b := g.alienBullets[0]
	if b.DY != 3 {
		t.Errorf("alien bullet speed %v, expected 3", b.DY)
	}

	found := false
	for _, a := range g.aliens {
		if a.X+a.W/2-2 == b.X && a.Bottom() == b.Y {
			found = true
		}
	}
	if !found {
		t.Errorf("bullet %+v not under any alien", b.Box)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	g := newTestGame()

	g.KeyDown(core.KeyW)
	g.KeyDown(core.KeyArrowUp)
	g.KeyDown(core.Key("enter"))

	if g.keys != (controls{}) {
		t.Errorf("unmapped keys should not set flags, got %+v", g.keys)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultInvadersConfig()
		cfg.Aliens.FireChance = 0.05
		g := NewWithConfig(cfg)
		g.Reset(testRuntime)

		for i := range 3000 {
			switch i % 60 {
			case 0:
				g.KeyDown(core.KeyArrowLeft)
				g.KeyDown(core.KeySpace)
			case 20:
				g.KeyUp(core.KeySpace)
				g.KeyUp(core.KeyArrowLeft)
				g.KeyDown(core.KeyArrowRight)
			case 40:
				g.KeyUp(core.KeyArrowRight)
				g.KeyDown(core.KeySpace)
			case 41:
				g.KeyUp(core.KeySpace)
			}
			g.Step()
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if !reflect.DeepEqual(snap1, snap2) {
		t.Error("Determinism failed: snapshots differ")
	}
}

func TestTogglePauseTwice(t *testing.T) {
	g := newTestGame()
	for range 10 {
		g.Step()
	}
	before := g.Snapshot()

	g.TogglePause()
	if g.State().Mode != core.ModePaused {
		t.Fatalf("expected paused, got %v", g.State().Mode)
	}
	g.Step()
	g.TogglePause()

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("pause round trip should not change entities")
	}
}

type sinkRecorder struct {
	last core.Counters
}

func (s *sinkRecorder) SetCounters(c core.Counters) {
	s.last = c
}

func TestScoreSink(t *testing.T) {
	g := newTestGame()
	sink := &sinkRecorder{}
	g.SetScoreSink(sink)

	if sink.last != (core.Counters{LeftLabel: "Score", Left: 0, RightLabel: "Lives", Right: 3}) {
		t.Errorf("unexpected initial counters %+v", sink.last)
	}

	g.playerBullets = []bullet{{Box: g.aliens[0].Box}}
	g.alienBullets = []bullet{{Box: g.ship}}
	g.checkCollisions()

	if sink.last.Left != 50 || sink.last.Right != 2 {
		t.Errorf("expected score 50 and 2 lives, got %+v", sink.last)
	}
}

type drawCall struct {
	op    string
	box   core.Box
	text  string
	paint core.Paint
}

type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) Clear() {
	r.calls = append(r.calls, drawCall{op: "clear"})
}

func (r *recordingSurface) FillRect(b core.Box, p core.Paint) {
	r.calls = append(r.calls, drawCall{op: "rect", box: b, paint: p})
}

func (r *recordingSurface) FillCircle(c core.Circle, p core.Paint) {
	r.calls = append(r.calls, drawCall{op: "circle", box: c.Bounds(), paint: p})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, _ []float64, p core.Paint) {
	r.calls = append(r.calls, drawCall{op: "line", box: core.NewBox(x0, y0, x1-x0, y1-y0), paint: p})
}

func (r *recordingSurface) FillText(text string, x, y float64, p core.Paint) {
	r.calls = append(r.calls, drawCall{op: "text", box: core.NewBox(x, y, 0, 0), text: text, paint: p})
}

func TestRender(t *testing.T) {
	g := newTestGame()
	surf := &recordingSurface{}

	g.Render(surf)

	if len(surf.calls) != 1+starCount+1+50 {
		t.Fatalf("expected clear, 50 stars, ship and 50 aliens; got %d calls", len(surf.calls))
	}
	if surf.calls[0].op != "clear" {
		t.Errorf("first call should clear, got %q", surf.calls[0].op)
	}

	star := surf.calls[1+2]
	if star.box != core.NewBox(74, 146, 1, 1) {
		t.Errorf("star #2 at %+v, expected (74, 146)", star.box)
	}

	ship := surf.calls[1+starCount]
	if ship.box != g.ship || ship.paint.Color != core.ColorBrightGreen {
		t.Errorf("unexpected ship draw %+v", ship)
	}

	rowColors := []core.Color{core.ColorRed, core.ColorYellow, core.ColorCyan, core.ColorMagenta, core.ColorWhite}
	for row, want := range rowColors {
		call := surf.calls[2+starCount+row*10]
		if call.paint.Color != want {
			t.Errorf("row %d drawn in %v, expected %v", row, call.paint.Color, want)
		}
	}
}

func TestRenderStarsFixed(t *testing.T) {
	g := newTestGame()
	a, b := &recordingSurface{}, &recordingSurface{}

	g.Render(a)
	for range 50 {
		g.Step()
	}
	g.Render(b)

	for i := 1; i <= starCount; i++ {
		if a.calls[i] != b.calls[i] {
			t.Fatalf("star %d moved between frames", i-1)
		}
	}
}

func TestRenderBullets(t *testing.T) {
	g := newTestGame()
	g.playerBullets = []bullet{{Box: core.NewBox(100, 300, 4, 10)}}
	g.alienBullets = []bullet{{Box: core.NewBox(200, 300, 4, 10)}}
	surf := &recordingSurface{}

	g.Render(surf)

	n := len(surf.calls)
	if surf.calls[n-2].paint.Color != core.ColorBrightGreen || surf.calls[n-1].paint.Color != core.ColorBrightRed {
		t.Error("player bullets should be green and alien bullets red")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame()
	g.TogglePause()
	surf := &recordingSurface{}
	g.Render(surf)

	last := surf.calls[len(surf.calls)-1]
	if last.text != "PAUSED" || last.box.X != 400 || last.box.Y != 300 {
		t.Errorf("expected centered PAUSED, got %+v", last)
	}

	g = newTestGame()
	g.mode = core.ModeGameOver
	surf = &recordingSurface{}
	g.Render(surf)

	n := len(surf.calls)
	if surf.calls[n-2].text != "GAME OVER" || surf.calls[n-1].text == "" {
		t.Errorf("expected GAME OVER with an instruction, got %+v %+v", surf.calls[n-2], surf.calls[n-1])
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("invaders")
	if err != nil {
		t.Fatalf("Create(invaders) failed: %v", err)
	}
	if g.ID() != "invaders" || g.Title() != "Space Invaders" {
		t.Errorf("unexpected game %q %q", g.ID(), g.Title())
	}
}
