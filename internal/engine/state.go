package engine

import (
	"errors"

	"github.com/enetx/fsm"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// ErrAttackLocked is returned when the player is still mid-swing.
var ErrAttackLocked = errors.New("attack locked")

// LockState is the player's attack-lock state.
type LockState uint8

const (
	LockReady LockState = iota
	LockLocked
)

func (l LockState) String() string {
	switch l {
	case LockReady:
		return "ready"
	case LockLocked:
		return "locked"
	}
	return "unknown"
}

const (
	lockReady  fsm.State = "ready"
	lockLocked fsm.State = "locked"

	evSwing  fsm.Event = "swing"
	evReturn fsm.Event = "return"
)

func lockFromFSM(s fsm.State) LockState {
	switch s {
	case lockLocked:
		return LockLocked
	default:
		return LockReady
	}
}

// Fighter is the player side of the session.
type Fighter struct {
	Health  Gauge
	Stamina Gauge
	lock    *fsm.FSM
}

func newFighter(max float64) Fighter {
	return Fighter{
		Health:  NewGauge(max),
		Stamina: NewGauge(max),
		lock: fsm.New(lockReady).
			Transition(lockReady, evSwing, lockLocked).
			Transition(lockLocked, evReturn, lockReady),
	}
}

func (f *Fighter) Lock() LockState { return lockFromFSM(f.lock.Current()) }

const (
	oppIdle         fsm.State = "idle"
	oppTelegraphing fsm.State = "telegraphing"
	oppAttacking    fsm.State = "attacking"
	oppRecovering   fsm.State = "recovering"

	evTelegraph       fsm.Event = "telegraph"
	evReactionElapsed fsm.Event = "reaction_elapsed"
	evRecovered       fsm.Event = "recovered"
)

var opponentStates = []game.OpponentState{
	game.OpponentIdle,
	game.OpponentTelegraphing,
	game.OpponentAttacking,
	game.OpponentRecovering,
}

func opponentFSMState(s game.OpponentState) fsm.State {
	switch s {
	case game.OpponentIdle:
		return oppIdle
	case game.OpponentTelegraphing:
		return oppTelegraphing
	case game.OpponentAttacking:
		return oppAttacking
	case game.OpponentRecovering:
		return oppRecovering
	}
	return oppIdle
}

func opponentStateFromFSM(s fsm.State) game.OpponentState {
	switch s {
	case oppTelegraphing:
		return game.OpponentTelegraphing
	case oppAttacking:
		return game.OpponentAttacking
	case oppRecovering:
		return game.OpponentRecovering
	default:
		return game.OpponentIdle
	}
}

// Opponent is the scripted side. Its state lives only in brain.
type Opponent struct {
	Health Gauge
	brain  *fsm.FSM
}

func (o *Opponent) State() game.OpponentState {
	return opponentStateFromFSM(o.brain.Current())
}

// newOpponent builds a fresh opponent for the next fight. When the reaction
// window closes the strike lands on a Ready player and is interrupted by a
// Locked one; every entered state is reported as OpponentStateChanged.
func (s *Session) newOpponent() Opponent {
	brain := fsm.New(oppIdle).
		Transition(oppIdle, evTelegraph, oppTelegraphing).
		TransitionWhen(oppTelegraphing, evReactionElapsed, oppAttacking, s.playerReady).
		TransitionWhen(oppTelegraphing, evReactionElapsed, oppRecovering, s.playerLocked).
		Transition(oppAttacking, evRecovered, oppIdle).
		Transition(oppRecovering, evRecovered, oppIdle)
	for _, st := range opponentStates {
		brain.OnEnter(opponentFSMState(st), func(*fsm.Context) error {
			s.emit(OpponentStateChanged{State: st})
			return nil
		})
	}
	return Opponent{Health: NewGauge(s.tuning.GaugeMax), brain: brain}
}

func (s *Session) playerReady(*fsm.Context) bool  { return s.player.Lock() == LockReady }
func (s *Session) playerLocked(*fsm.Context) bool { return s.player.Lock() == LockLocked }

// opponentEvent feeds ev to the opponent and reports whether it moved.
func (s *Session) opponentEvent(ev fsm.Event) bool {
	return s.opponent.brain.Trigger(ev) == nil
}
