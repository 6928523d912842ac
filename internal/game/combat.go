package game

import "strings"

// Technique is the punch a player throws. Using a dedicated type instead of
// plain strings keeps the catalogue closed.
type Technique string

const (
	Jab      Technique = "jab"
	Hook     Technique = "hook"
	Straight Technique = "straight"
	Uppercut Technique = "uppercut"
)

// Techniques lists every known technique in display order.
var Techniques = []Technique{Jab, Hook, Straight, Uppercut}

// ParseTechnique maps client input to a Technique (case-insensitive).
func ParseTechnique(s string) (Technique, bool) {
	t := Technique(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Jab, Hook, Straight, Uppercut:
		return t, true
	}
	return "", false
}

// Hand returns the glove that throws the technique: jab and hook come from
// the lead (left) hand, everything else from the rear hand.
func (t Technique) Hand() Hand {
	switch t {
	case Jab, Hook:
		return HandLeft
	case Straight, Uppercut:
		return HandRight
	}
	return HandRight
}

type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	}
	return "unknown"
}

// AttackIntent is a single player request to throw a punch.
type AttackIntent struct {
	Technique  Technique
	OriginHand Hand
}

// NewAttackIntent builds an intent with the hand implied by the technique.
func NewAttackIntent(t Technique) AttackIntent {
	return AttackIntent{Technique: t, OriginHand: t.Hand()}
}

// OpponentState is the scripted opponent's combat phase.
type OpponentState uint8

const (
	OpponentIdle OpponentState = iota
	// OpponentTelegraphing is the warning phase before a strike. The opponent
	// can be countered only while in this state.
	OpponentTelegraphing
	OpponentAttacking
	OpponentRecovering
)

func (s OpponentState) String() string {
	switch s {
	case OpponentIdle:
		return "idle"
	case OpponentTelegraphing:
		return "telegraphing"
	case OpponentAttacking:
		return "attacking"
	case OpponentRecovering:
		return "recovering"
	}
	return "unknown"
}

// Vulnerable reports whether an attack resolving now counts as a counter.
func (s OpponentState) Vulnerable() bool {
	switch s {
	case OpponentTelegraphing:
		return true
	case OpponentIdle, OpponentAttacking, OpponentRecovering:
		return false
	}
	return false
}

// Target identifies who receives damage.
type Target uint8

const (
	TargetPlayer Target = iota
	TargetOpponent
)

func (t Target) String() string {
	switch t {
	case TargetPlayer:
		return "player"
	case TargetOpponent:
		return "opponent"
	}
	return "unknown"
}
