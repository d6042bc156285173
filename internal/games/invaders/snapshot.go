package invaders

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	ShipX     int
	Score     int
	Lives     int
	Wave      int
	Mode      core.Mode
	Direction int
	Alive     int

	// Aliens in grid order, 3 ints each: X, Y, Alive
	AlienData []int

	// Bullets, 2 ints each: X, Y
	PlayerBulletData []int
	AlienBulletData  []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	alienData := make([]int, 0, len(g.aliens)*3)
	for _, a := range g.aliens {
		alive := 0
		if a.Alive {
			alive = 1
		}
		alienData = append(alienData, int(a.X), int(a.Y), alive)
	}

	return Snapshot{
		Tick:             uint64(max(0, g.tick)), //nolint:gosec // tick is never negative
		ShipX:            int(g.ship.X),
		Score:            g.score,
		Lives:            g.lives,
		Wave:             g.wave,
		Mode:             g.mode,
		Direction:        int(g.direction),
		Alive:            g.AliveCount(),
		AlienData:        alienData,
		PlayerBulletData: bulletData(g.playerBullets),
		AlienBulletData:  bulletData(g.alienBullets),
	}
}

func bulletData(bullets []bullet) []int {
	out := make([]int, 0, len(bullets)*2)
	for _, b := range bullets {
		out = append(out, int(b.X), int(b.Y))
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ShipX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Alive)     //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PlayerBulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.AlienBulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
