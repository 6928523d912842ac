package engine

import (
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// attackResolution is an in-flight punch between acceptance and hit check.
type attackResolution struct {
	fight       uint64
	technique   game.Technique
	strength    int
	initiatedAt time.Duration
	resolveAt   time.Duration
	// countering is true when the punch was thrown into a telegraph. It
	// keeps the counter even if the telegraph resolves before this timer.
	countering bool
}

func (r attackResolution) fire(s *Session) {
	if r.fight != s.fight {
		return
	}
	counter := r.countering || s.opponent.State().Vulnerable()
	dmg := Damage(s.tuning, r.strength, counter)
	s.emit(DamageApplied{Target: game.TargetOpponent, Amount: dmg, WasCounter: counter})
	if counter {
		s.emit(StatsChanged{Stats: s.ledger.Credit(s.tuning.CounterReward)})
	}
	if s.ApplyDamage(game.TargetOpponent, dmg) {
		s.concludeFight()
	}
	s.emitResources()
}

// windupReturn releases the attack lock. The player outlives fights, so it
// is not tied to a fight generation.
type windupReturn struct{}

func (windupReturn) fire(s *Session) {
	switch s.player.Lock() {
	case LockLocked:
		_ = s.player.lock.Trigger(evReturn)
	case LockReady:
	}
}

// telegraphResolution ends the reaction window. A player caught mid-swing
// interrupts the strike.
type telegraphResolution struct {
	fight uint64
}

func (r telegraphResolution) fire(s *Session) {
	if r.fight != s.fight || s.opponent.State() != game.OpponentTelegraphing {
		return
	}
	if !s.opponentEvent(evReactionElapsed) {
		return
	}
	s.timers.schedule(s.now+s.tuning.RecoverDuration, opponentRecovered{fight: s.fight})

	switch s.opponent.State() {
	case game.OpponentAttacking:
		s.emit(DamageApplied{Target: game.TargetPlayer, Amount: s.tuning.OpponentDamage})
		if s.ApplyDamage(game.TargetPlayer, s.tuning.OpponentDamage) {
			s.loseFight()
		}
		s.emitResources()
	case game.OpponentRecovering, game.OpponentIdle, game.OpponentTelegraphing:
	}
}

// opponentRecovered returns the opponent to Idle after a strike or an
// interrupted strike.
type opponentRecovered struct {
	fight uint64
}

func (r opponentRecovered) fire(s *Session) {
	if r.fight != s.fight {
		return
	}
	s.opponentEvent(evRecovered)
}
