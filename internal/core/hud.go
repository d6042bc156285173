package core

// Counters are the two numbers a game shows next to the playfield,
// e.g. both players' scores in Pong or score and lives in Invaders.
type Counters struct {
	LeftLabel  string
	Left       int
	RightLabel string
	Right      int
}

// ScoreSink receives counters whenever a game changes them.
type ScoreSink interface {
	SetCounters(c Counters)
}

// DiscardSink is a ScoreSink that drops every update.
var DiscardSink ScoreSink = discardSink{}

type discardSink struct{}

func (discardSink) SetCounters(Counters) {}
