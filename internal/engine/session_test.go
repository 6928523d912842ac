package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

type testLedger struct {
	stats game.Stats
}

func (l *testLedger) Stats() game.Stats { return l.stats }

func (l *testLedger) Credit(n int) game.Stats {
	l.stats.Cash += n
	return l.stats
}

// fixedRand always returns v. 1 never telegraphs, 0 always does.
type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

const frame = time.Second / 60

func newTestSession(strength int) (*Session, *testLedger) {
	l := &testLedger{stats: game.Stats{Strength: strength, Agility: 10, Cash: 1000}}
	return NewSession(DefaultTuning(), l, fixedRand{1}), l
}

func eventsOf[T Event](evs []Event) []T {
	var out []T
	for _, e := range evs {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAttackRejectedBelowStaminaCost(t *testing.T) {
	s, l := newTestSession(10)
	s.startTelegraph()
	s.player.Stamina.Set(9.5)
	before := s.Snapshot()

	evs, err := s.Attack(game.NewAttackIntent(game.Jab))
	if !errors.Is(err, ErrInsufficientResource) {
		t.Fatalf("expected ErrInsufficientResource, got %v", err)
	}
	if len(evs) != 0 {
		t.Fatalf("rejected attack emitted events: %v", evs)
	}
	after := s.Snapshot()
	if after != before {
		t.Fatalf("state changed on rejected attack: before=%+v after=%+v", before, after)
	}
	if l.stats.Cash != 1000 {
		t.Fatalf("cash changed on rejected attack: %d", l.stats.Cash)
	}
}

func TestAttackRejectedWhileLocked(t *testing.T) {
	s, _ := newTestSession(10)
	if _, err := s.Attack(game.NewAttackIntent(game.Jab)); err != nil {
		t.Fatalf("first attack: %v", err)
	}
	if _, err := s.Attack(game.NewAttackIntent(game.Hook)); !errors.Is(err, ErrAttackLocked) {
		t.Fatalf("expected ErrAttackLocked, got %v", err)
	}
	if got := s.Snapshot().Stamina; !almostEqual(got, 90) {
		t.Fatalf("stamina = %v, want 90", got)
	}

	s.Tick(159 * time.Millisecond)
	if s.Snapshot().Lock != LockLocked {
		t.Fatalf("lock released before the windup finished")
	}
	s.Tick(time.Millisecond)
	if s.Snapshot().Lock != LockReady {
		t.Fatalf("lock not released after 160ms")
	}
}

func TestAttackStartedCarriesHand(t *testing.T) {
	s, _ := newTestSession(10)
	evs, err := s.Attack(game.NewAttackIntent(game.Uppercut))
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	started := eventsOf[AttackStarted](evs)
	if len(started) != 1 || started[0].Hand != game.HandRight || started[0].Technique != game.Uppercut {
		t.Fatalf("unexpected AttackStarted: %+v", started)
	}
}

func TestRegenStaysWithinBounds(t *testing.T) {
	s, _ := newTestSession(10)
	s.player.Stamina.Set(0)
	for i := 0; i < 1000; i++ {
		s.RegenTick(frame)
		v := s.Snapshot().Stamina
		if v < 0 || v > 100 {
			t.Fatalf("stamina out of range after %d ticks: %v", i, v)
		}
	}
	if got := s.Snapshot().Stamina; got != 100 {
		t.Fatalf("stamina = %v, want capped at 100", got)
	}
	if s.RegenTick(frame) {
		t.Fatalf("regen at cap reported a change")
	}
}

func TestRegenHalfUnitPerFrame(t *testing.T) {
	s, _ := newTestSession(10)
	s.player.Stamina.Set(50)
	s.RegenTick(frame)
	if got := s.Snapshot().Stamina; math.Abs(got-50.5) > 1e-6 {
		t.Fatalf("stamina = %v, want 50.5", got)
	}
}

func TestCounterDamageWhenTelegraphingAtResolution(t *testing.T) {
	s, l := newTestSession(10)
	if _, err := s.Attack(game.NewAttackIntent(game.Jab)); err != nil {
		t.Fatalf("attack: %v", err)
	}
	// telegraph starts after the throw but before the hit check
	s.Tick(40 * time.Millisecond)
	s.startTelegraph()
	evs := s.Tick(40 * time.Millisecond)

	hits := eventsOf[DamageApplied](evs)
	if len(hits) != 1 {
		t.Fatalf("expected one hit, got %+v", hits)
	}
	if !hits[0].WasCounter || !almostEqual(hits[0].Amount, 15) {
		t.Fatalf("expected counter for 15, got %+v", hits[0])
	}
	if l.stats.Cash != 1050 {
		t.Fatalf("cash = %d, want 1050", l.stats.Cash)
	}
	if got := s.Snapshot().OpponentHealth; !almostEqual(got, 85) {
		t.Fatalf("opponent health = %v, want 85", got)
	}
}

func TestPlainDamageWhenNotTelegraphing(t *testing.T) {
	s, l := newTestSession(10)
	if _, err := s.Attack(game.NewAttackIntent(game.Straight)); err != nil {
		t.Fatalf("attack: %v", err)
	}
	evs := s.Tick(80 * time.Millisecond)
	hits := eventsOf[DamageApplied](evs)
	if len(hits) != 1 || hits[0].WasCounter || !almostEqual(hits[0].Amount, 6) {
		t.Fatalf("expected plain hit for 6, got %+v", hits)
	}
	if l.stats.Cash != 1000 {
		t.Fatalf("cash = %d, want unchanged 1000", l.stats.Cash)
	}
}

func TestCounterKeptWhenTelegraphResolvesFirst(t *testing.T) {
	s, l := newTestSession(10)
	s.startTelegraph() // resolves at 600ms
	s.Tick(550 * time.Millisecond)
	if _, err := s.Attack(game.NewAttackIntent(game.Hook)); err != nil {
		t.Fatalf("attack: %v", err)
	}
	// telegraph resolves at 600ms, the punch lands at 630ms
	evs := s.Tick(100 * time.Millisecond)

	hits := eventsOf[DamageApplied](evs)
	if len(hits) != 1 {
		t.Fatalf("expected only the player's hit, got %+v", hits)
	}
	if hits[0].Target != game.TargetOpponent || !hits[0].WasCounter {
		t.Fatalf("expected counter on opponent, got %+v", hits[0])
	}
	if got := s.Snapshot().Health; got != 100 {
		t.Fatalf("opponent strike should be suppressed, player health = %v", got)
	}
	if l.stats.Cash != 1050 {
		t.Fatalf("cash = %d, want 1050", l.stats.Cash)
	}
	if st := s.Snapshot().OpponentState; st != game.OpponentIdle {
		t.Fatalf("opponent state = %v, want idle", st)
	}
}

func TestTelegraphLandsWhenPlayerReady(t *testing.T) {
	s, _ := newTestSession(10)
	s.startTelegraph()
	s.Tick(599 * time.Millisecond)
	if got := s.Snapshot().Health; got != 100 {
		t.Fatalf("strike landed early, health = %v", got)
	}
	evs := s.Tick(time.Millisecond)
	hits := eventsOf[DamageApplied](evs)
	if len(hits) != 1 || hits[0].Target != game.TargetPlayer || hits[0].Amount != 10 {
		t.Fatalf("expected 10 damage to player, got %+v", hits)
	}
	if got := s.Snapshot().Health; got != 90 {
		t.Fatalf("health = %v, want 90", got)
	}
	states := eventsOf[OpponentStateChanged](evs)
	if len(states) != 2 || states[0].State != game.OpponentAttacking || states[1].State != game.OpponentIdle {
		t.Fatalf("unexpected opponent transitions: %+v", states)
	}
}

func TestOnlyOneTelegraphOutstanding(t *testing.T) {
	l := &testLedger{stats: game.DefaultStats()}
	s := NewSession(DefaultTuning(), l, fixedRand{0})

	var started int
	for i := 0; i < 30; i++ { // 500ms, inside the reaction window
		for _, e := range eventsOf[OpponentStateChanged](s.Tick(frame)) {
			if e.State == game.OpponentTelegraphing {
				started++
			}
		}
	}
	if started != 1 {
		t.Fatalf("telegraphs started = %d, want 1", started)
	}
	if n := s.Snapshot().PendingTimers; n != 1 {
		t.Fatalf("pending timers = %d, want 1", n)
	}
}

func TestFightConcludesExactlyOnce(t *testing.T) {
	s, l := newTestSession(10)
	s.opponent.Health.Set(6)
	if _, err := s.Attack(game.NewAttackIntent(game.Jab)); err != nil {
		t.Fatalf("attack: %v", err)
	}
	evs := s.Tick(200 * time.Millisecond)

	wins := eventsOf[FightConcluded](evs)
	if len(wins) != 1 {
		t.Fatalf("FightConcluded fired %d times, want 1", len(wins))
	}
	if wins[0].CashReward != 100 || wins[0].Fight != 1 {
		t.Fatalf("unexpected win event: %+v", wins[0])
	}
	if l.stats.Cash != 1100 {
		t.Fatalf("cash = %d, want 1100", l.stats.Cash)
	}
	snap := s.Snapshot()
	if snap.OpponentHealth != 100 || snap.Fight != 2 {
		t.Fatalf("opponent not reset: %+v", snap)
	}

	// a resolution captured in the finished fight must not touch the new one
	s.timers.schedule(s.now, attackResolution{fight: 1, strength: 1000, countering: true})
	evs = s.Tick(0)
	if len(eventsOf[DamageApplied](evs)) != 0 || len(eventsOf[FightConcluded](evs)) != 0 {
		t.Fatalf("stale resolution applied: %+v", evs)
	}
	if s.Snapshot().OpponentHealth != 100 || l.stats.Cash != 1100 {
		t.Fatalf("stale resolution mutated state")
	}
}

func TestStaleTelegraphIgnoredAfterWin(t *testing.T) {
	s, _ := newTestSession(10)
	s.startTelegraph()
	s.opponent.Health.Set(1)
	if _, err := s.Attack(game.NewAttackIntent(game.Jab)); err != nil {
		t.Fatalf("attack: %v", err)
	}
	s.Tick(100 * time.Millisecond)
	if s.Snapshot().Fight != 2 {
		t.Fatalf("expected the fight to be won")
	}
	s.Tick(time.Second)
	snap := s.Snapshot()
	if snap.Health != 100 {
		t.Fatalf("telegraph from finished fight hit the player: %+v", snap)
	}
	if snap.OpponentState != game.OpponentIdle {
		t.Fatalf("opponent state = %v, want idle", snap.OpponentState)
	}
}

func TestPlayerKnockoutLosesFight(t *testing.T) {
	s, l := newTestSession(10)
	s.player.Health.Set(10)
	s.player.Stamina.Set(20)
	s.startTelegraph()
	evs := s.Tick(600 * time.Millisecond)

	lost := eventsOf[FightLost](evs)
	if len(lost) != 1 || lost[0].Fight != 1 {
		t.Fatalf("expected one FightLost, got %+v", lost)
	}
	snap := s.Snapshot()
	if snap.Health != 100 || snap.Stamina != 100 || snap.OpponentHealth != 100 || snap.Fight != 2 {
		t.Fatalf("session not reset after knockout: %+v", snap)
	}
	if l.stats.Cash != 1000 {
		t.Fatalf("knockout changed cash: %d", l.stats.Cash)
	}
}

func TestRecoverDurationDelaysIdle(t *testing.T) {
	tun := DefaultTuning()
	tun.RecoverDuration = 200 * time.Millisecond
	s := NewSession(tun, &testLedger{stats: game.DefaultStats()}, fixedRand{1})
	s.startTelegraph()
	s.Tick(600 * time.Millisecond)
	if st := s.Snapshot().OpponentState; st != game.OpponentAttacking {
		t.Fatalf("state = %v, want attacking", st)
	}
	s.Tick(200 * time.Millisecond)
	if st := s.Snapshot().OpponentState; st != game.OpponentIdle {
		t.Fatalf("state = %v, want idle", st)
	}
}

func TestTelegraphChancePerTickByDefault(t *testing.T) {
	s, _ := newTestSession(10)
	if got := s.telegraphChance(frame); got != 0.05 {
		t.Fatalf("chance at 60Hz = %v, want 0.05", got)
	}
	if got := s.telegraphChance(frame / 2); got != 0.05 {
		t.Fatalf("chance at 120Hz = %v, want 0.05", got)
	}
}

func TestTelegraphChanceNormalized(t *testing.T) {
	tun := DefaultTuning()
	tun.NormalizeTelegraphChance = true
	s := NewSession(tun, &testLedger{}, fixedRand{1})
	if got := s.telegraphChance(frame); math.Abs(got-0.05) > 1e-6 {
		t.Fatalf("chance at reference rate = %v, want 0.05", got)
	}
	// two 120Hz ticks must equal one 60Hz tick
	half := s.telegraphChance(frame / 2)
	combined := 1 - (1-half)*(1-half)
	if math.Abs(combined-0.05) > 1e-6 {
		t.Fatalf("combined chance = %v, want 0.05", combined)
	}
}
