package arena

import (
	"github.com/kawertyff-source/Simungboxing-128/internal/engine"
	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/protocol"
)

func statsPayload(s game.Stats) protocol.Stats {
	return protocol.Stats{Strength: s.Strength, Agility: s.Agility, Cash: s.Cash}
}

// eventMessage maps an engine event to its wire type and payload.
func eventMessage(e engine.Event) (string, any) {
	switch ev := e.(type) {
	case engine.AttackStarted:
		return protocol.MsgAttackStarted, protocol.AttackStarted{Technique: string(ev.Technique), Hand: ev.Hand.String()}
	case engine.DamageApplied:
		return protocol.MsgDamage, protocol.Damage{Target: ev.Target.String(), Amount: ev.Amount, WasCounter: ev.WasCounter}
	case engine.ResourceChanged:
		return protocol.MsgResources, protocol.Resources{Health: ev.Health, Stamina: ev.Stamina, OpponentHealth: ev.OpponentHealth}
	case engine.OpponentStateChanged:
		return protocol.MsgOpponentState, protocol.OpponentState{State: ev.State.String()}
	case engine.StatsChanged:
		return protocol.MsgStats, statsPayload(ev.Stats)
	case engine.FightConcluded:
		return protocol.MsgFightConcluded, protocol.FightConcluded{Fight: ev.Fight, CashReward: ev.CashReward, Stats: statsPayload(ev.Stats)}
	case engine.FightLost:
		return protocol.MsgFightLost, protocol.FightLost{Fight: ev.Fight}
	}
	return "", nil
}
