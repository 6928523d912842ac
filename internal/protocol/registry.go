package protocol

// MessageSpec pairs a message type with its payload shape.
type MessageSpec struct {
	Type       string
	FromClient bool
	Payload    any
}

// Messages lists every message the fight socket carries.
var Messages = []MessageSpec{
	{Type: MsgHello, FromClient: true, Payload: Hello{}},
	{Type: MsgAttack, FromClient: true, Payload: Attack{}},
	{Type: MsgWelcome, Payload: Welcome{}},
	{Type: MsgAttackStarted, Payload: AttackStarted{}},
	{Type: MsgDamage, Payload: Damage{}},
	{Type: MsgResources, Payload: Resources{}},
	{Type: MsgOpponentState, Payload: OpponentState{}},
	{Type: MsgStats, Payload: Stats{}},
	{Type: MsgFightConcluded, Payload: FightConcluded{}},
	{Type: MsgFightLost, Payload: FightLost{}},
}
