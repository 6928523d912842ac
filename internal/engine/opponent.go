package engine

import (
	"math"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// telegraphChance returns the probability of starting a telegraph this tick.
// By default it is a flat per-tick Bernoulli trial, so a faster tick rate
// makes the opponent more aggressive.
func (s *Session) telegraphChance(dt time.Duration) float64 {
	p := s.tuning.TelegraphChance
	if !s.tuning.NormalizeTelegraphChance {
		return p
	}
	ticks := dt.Seconds() * s.tuning.ReferenceTickHz
	return 1 - math.Pow(1-p, ticks)
}

func (s *Session) rollTelegraph(dt time.Duration) {
	if s.opponent.State() != game.OpponentIdle {
		return
	}
	if s.rng.Float64() >= s.telegraphChance(dt) {
		return
	}
	s.startTelegraph()
}

func (s *Session) startTelegraph() {
	if !s.opponentEvent(evTelegraph) {
		return
	}
	s.timers.schedule(s.now+s.tuning.ReactionWindow, telegraphResolution{fight: s.fight})
}
