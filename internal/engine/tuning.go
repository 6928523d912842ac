package engine

import (
	"errors"
	"fmt"
	"time"
)

// Tuning holds every combat constant. DefaultTuning matches the shipped game;
// the config file may override individual values.
type Tuning struct {
	GaugeMax float64

	AttackStaminaCost     float64
	StaminaRegenPerSecond float64

	// WindupOutbound is the delay between an accepted attack and its hit
	// check. WindupReturn is the time the glove takes to come back; the
	// player stays attack-locked for the sum of both.
	WindupOutbound time.Duration
	WindupReturn   time.Duration

	// TelegraphChance is the probability per tick that an idle opponent
	// starts a telegraph. When NormalizeTelegraphChance is set it is instead
	// the per-tick chance at ReferenceTickHz, rescaled to the real tick length.
	TelegraphChance          float64
	NormalizeTelegraphChance bool
	ReferenceTickHz          float64

	ReactionWindow  time.Duration
	RecoverDuration time.Duration
	OpponentDamage  float64

	BaseDamage        float64
	StrengthFactor    float64
	CounterMultiplier float64
	CounterReward     int
	WinReward         int
}

// DefaultTuning returns the stock combat constants.
func DefaultTuning() Tuning {
	return Tuning{
		GaugeMax:                 100,
		AttackStaminaCost:        10,
		StaminaRegenPerSecond:    30, // +0.5 per tick at 60 Hz
		WindupOutbound:           80 * time.Millisecond,
		WindupReturn:             80 * time.Millisecond,
		TelegraphChance:          0.05,
		NormalizeTelegraphChance: false,
		ReferenceTickHz:          60,
		ReactionWindow:           600 * time.Millisecond,
		RecoverDuration:          0,
		OpponentDamage:           10,
		BaseDamage:               5,
		StrengthFactor:           0.1,
		CounterMultiplier:        2.5,
		CounterReward:            50,
		WinReward:                100,
	}
}

// Windup is the full attack-lock duration.
func (t Tuning) Windup() time.Duration {
	return t.WindupOutbound + t.WindupReturn
}

var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects values the state machines cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.GaugeMax <= 0:
		return fmt.Errorf("%w: gauge max must be > 0", ErrInvalidTuning)
	case t.AttackStaminaCost < 0 || t.AttackStaminaCost > t.GaugeMax:
		return fmt.Errorf("%w: attack stamina cost must be within [0, %v]", ErrInvalidTuning, t.GaugeMax)
	case t.StaminaRegenPerSecond < 0:
		return fmt.Errorf("%w: stamina regen must be >= 0", ErrInvalidTuning)
	case t.WindupOutbound <= 0 || t.WindupReturn < 0:
		return fmt.Errorf("%w: windup durations must be positive", ErrInvalidTuning)
	case t.TelegraphChance < 0 || t.TelegraphChance > 1:
		return fmt.Errorf("%w: telegraph chance must be within [0, 1]", ErrInvalidTuning)
	case t.NormalizeTelegraphChance && t.ReferenceTickHz <= 0:
		return fmt.Errorf("%w: reference tick rate must be > 0", ErrInvalidTuning)
	case t.ReactionWindow <= 0 || t.RecoverDuration < 0:
		return fmt.Errorf("%w: opponent durations must be positive", ErrInvalidTuning)
	case t.OpponentDamage < 0 || t.BaseDamage < 0 || t.StrengthFactor < 0 || t.CounterMultiplier < 1:
		return fmt.Errorf("%w: damage values out of range", ErrInvalidTuning)
	case t.CounterReward < 0 || t.WinReward < 0:
		return fmt.Errorf("%w: rewards must be >= 0", ErrInvalidTuning)
	}
	return nil
}
