package config

// ProgressBasis selects the counter a Ramp advances on.
type ProgressBasis string

const (
	ProgressByScore ProgressBasis = "score"
	ProgressByTime  ProgressBasis = "time"
	ProgressNone    ProgressBasis = "none"
)

// Ramp turns a game's score or tick count into a difficulty level in [0, 1].
// The level starts at the configured initial level and climbs linearly
// until the progression threshold is reached.
type Ramp struct {
	start float64
	basis ProgressBasis
	span  float64
}

// NewRamp builds a ramp from a difficulty section.
// A disabled section or basis "none" yields a ramp pinned at its start level.
func NewRamp(cfg DifficultyConfig) Ramp {
	r := Ramp{
		start: unit(cfg.InitialLevel),
		basis: cfg.Progression.Type,
		span:  float64(cfg.Progression.MaxAt),
	}
	if !cfg.Enabled {
		r.basis = ProgressNone
	}
	if r.span <= 0 {
		r.span = 1
	}
	return r
}

// Active reports whether the level moves at all.
func (r Ramp) Active() bool {
	return r.basis == ProgressByScore || r.basis == ProgressByTime
}

// Level returns the difficulty for the given score and elapsed ticks.
func (r Ramp) Level(score, ticks int) float64 {
	var n int
	switch r.basis {
	case ProgressByScore:
		n = score
	case ProgressByTime:
		n = ticks
	default:
		return r.start
	}
	return r.start + unit(float64(n)/r.span)*(1-r.start)
}

// Lerp maps the current level onto [lo, hi].
func (r Ramp) Lerp(lo, hi float64, score, ticks int) float64 {
	return lo + (hi-lo)*r.Level(score, ticks)
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
