package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgAttack  = "attack"
	MsgWelcome = "welcome"

	MsgAttackStarted  = "attack_started"
	MsgDamage         = "damage"
	MsgResources      = "resources"
	MsgOpponentState  = "opponent_state"
	MsgStats          = "stats"
	MsgFightConcluded = "fight_concluded"
	MsgFightLost      = "fight_lost"
)

// Version is the protocol revision announced in hello.
const Version = 1

type Envelope struct {
	T string          `json:"t" jsonschema:"description=Message type"`
	P json.RawMessage `json:"p" jsonschema:"description=Type specific payload"`
}
