package engine

import (
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// Ledger is the stats store the session reads strength from and credits
// rewards to. Credit must be atomic with respect to other cash updates.
type Ledger interface {
	Stats() game.Stats
	Credit(amount int) game.Stats
}

// Rand is the random source for opponent decisions. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Session is one player's exchange against the scripted opponent. It is not
// safe for concurrent use; a single goroutine must own it.
type Session struct {
	tuning Tuning
	ledger Ledger
	rng    Rand

	now   time.Duration
	fight uint64

	player   Fighter
	opponent Opponent
	timers   scheduler

	out []Event
}

// NewSession starts a fresh fight at clock zero.
func NewSession(t Tuning, ledger Ledger, rng Rand) *Session {
	s := &Session{
		tuning: t,
		ledger: ledger,
		rng:    rng,
		fight:  1,
		player: newFighter(t.GaugeMax),
	}
	s.opponent = s.newOpponent()
	return s
}

// Snapshot is a read-only view of the session.
type Snapshot struct {
	Now            time.Duration
	Fight          uint64
	Health         float64
	Stamina        float64
	Lock           LockState
	OpponentHealth float64
	OpponentState  game.OpponentState
	PendingTimers  int
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Now:            s.now,
		Fight:          s.fight,
		Health:         s.player.Health.Value(),
		Stamina:        s.player.Stamina.Value(),
		Lock:           s.player.Lock(),
		OpponentHealth: s.opponent.Health.Value(),
		OpponentState:  s.opponent.State(),
		PendingTimers:  s.timers.pending(),
	}
}

func (s *Session) Tuning() Tuning { return s.tuning }

// Attack tries to start a punch. A rejected attack changes nothing and emits
// nothing.
func (s *Session) Attack(intent game.AttackIntent) ([]Event, error) {
	switch s.player.Lock() {
	case LockLocked:
		return nil, ErrAttackLocked
	case LockReady:
	}
	if err := s.player.Stamina.Spend(s.tuning.AttackStaminaCost); err != nil {
		return nil, err
	}
	_ = s.player.lock.Trigger(evSwing)

	res := attackResolution{
		fight:       s.fight,
		technique:   intent.Technique,
		strength:    s.ledger.Stats().Strength,
		initiatedAt: s.now,
		resolveAt:   s.now + s.tuning.WindupOutbound,
		countering:  s.opponent.State().Vulnerable(),
	}
	s.timers.schedule(res.resolveAt, res)
	s.timers.schedule(s.now+s.tuning.Windup(), windupReturn{})

	s.emit(AttackStarted{Technique: intent.Technique, Hand: intent.OriginHand})
	s.emitResources()
	return s.drain(), nil
}

// Tick advances the clock by dt, fires every due timer in order, rolls the
// opponent's attack decision and regenerates stamina.
func (s *Session) Tick(dt time.Duration) []Event {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		st, ok := s.timers.next(target)
		if !ok {
			break
		}
		if st.at > s.now {
			s.now = st.at
		}
		st.t.fire(s)
	}
	s.now = target

	s.rollTelegraph(dt)
	if s.RegenTick(dt) {
		s.emitResources()
	}
	return s.drain()
}

// RegenTick restores stamina for an elapsed dt and reports whether it moved.
func (s *Session) RegenTick(dt time.Duration) bool {
	if dt <= 0 {
		return false
	}
	return s.player.Stamina.Add(s.tuning.StaminaRegenPerSecond * dt.Seconds())
}

// ApplyDamage hits target and reports whether its health reached zero.
func (s *Session) ApplyDamage(target game.Target, amount float64) (depleted bool) {
	switch target {
	case game.TargetPlayer:
		return s.player.Health.Apply(amount)
	case game.TargetOpponent:
		return s.opponent.Health.Apply(amount)
	}
	return false
}

// concludeFight handles a knockout of the opponent. It runs at most once per
// fight because it advances the fight generation that every timer checks.
func (s *Session) concludeFight() {
	finished := s.fight
	stats := s.ledger.Credit(s.tuning.WinReward)
	s.resetOpponent()
	s.emit(FightConcluded{Fight: finished, CashReward: s.tuning.WinReward, Stats: stats})
}

// loseFight handles a knockout of the player.
func (s *Session) loseFight() {
	finished := s.fight
	s.player.Health.Refill()
	s.player.Stamina.Refill()
	s.resetOpponent()
	s.emit(FightLost{Fight: finished})
}

func (s *Session) resetOpponent() {
	s.fight++
	prev := s.opponent.State()
	s.opponent = s.newOpponent()
	if prev != game.OpponentIdle {
		s.emit(OpponentStateChanged{State: game.OpponentIdle})
	}
}

func (s *Session) emit(e Event) {
	s.out = append(s.out, e)
}

func (s *Session) emitResources() {
	s.emit(ResourceChanged{
		Health:         s.player.Health.Value(),
		Stamina:        s.player.Stamina.Value(),
		OpponentHealth: s.opponent.Health.Value(),
	})
}

func (s *Session) drain() []Event {
	out := s.out
	s.out = nil
	return out
}
