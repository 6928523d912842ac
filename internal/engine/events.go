package engine

import "github.com/kawertyff-source/Simungboxing-128/internal/game"

// Event is an effect emitted for the presentation and persistence layers.
// The set is closed: only types in this file implement it.
type Event interface {
	isEvent()
}

// AttackStarted is emitted when an attack is accepted and the windup begins.
type AttackStarted struct {
	Technique game.Technique
	Hand      game.Hand
}

// DamageApplied is emitted for every landed hit, from either side.
type DamageApplied struct {
	Target     game.Target
	Amount     float64
	WasCounter bool
}

// ResourceChanged carries the gauge values after a change.
type ResourceChanged struct {
	Health         float64
	Stamina        float64
	OpponentHealth float64
}

// OpponentStateChanged is emitted on every opponent transition.
type OpponentStateChanged struct {
	State game.OpponentState
}

// StatsChanged is emitted after a reward is credited.
type StatsChanged struct {
	Stats game.Stats
}

// FightConcluded marks a win. Stats must be flushed to storage.
type FightConcluded struct {
	Fight      uint64
	CashReward int
	Stats      game.Stats
}

// FightLost marks a knockout of the player. No reward is granted.
type FightLost struct {
	Fight uint64
}

func (AttackStarted) isEvent()        {}
func (DamageApplied) isEvent()        {}
func (ResourceChanged) isEvent()      {}
func (OpponentStateChanged) isEvent() {}
func (StatsChanged) isEvent()         {}
func (FightConcluded) isEvent()       {}
func (FightLost) isEvent()            {}
