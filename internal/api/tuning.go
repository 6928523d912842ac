package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

type combatTuning struct {
	GaugeMax              float64 `json:"gauge_max"`
	AttackStaminaCost     float64 `json:"attack_stamina_cost"`
	StaminaRegenPerSecond float64 `json:"stamina_regen_per_second"`
	WindupOutboundMS      int64   `json:"windup_outbound_ms"`
	WindupReturnMS        int64   `json:"windup_return_ms"`
	ReactionWindowMS      int64   `json:"reaction_window_ms"`
	TelegraphChance       float64 `json:"telegraph_chance"`
	OpponentDamage        float64 `json:"opponent_damage"`
	BaseDamage            float64 `json:"base_damage"`
	StrengthFactor        float64 `json:"strength_factor"`
	CounterMultiplier     float64 `json:"counter_multiplier"`
	CounterReward         int     `json:"counter_reward"`
	WinReward             int     `json:"win_reward"`
}

type tuningResponse struct {
	TickHz int                   `json:"tick_hz"`
	Combat combatTuning          `json:"combat"`
	Loot   progression.LootTable `json:"loot"`
}

// GetTuning exposes the combat and loot constants so the client can draw
// gauges and cooldowns without hardcoding them.
func (h *Handler) GetTuning(c *gin.Context) {
	t := h.tuning
	c.JSON(http.StatusOK, tuningResponse{
		TickHz: h.tickHz,
		Combat: combatTuning{
			GaugeMax:              t.GaugeMax,
			AttackStaminaCost:     t.AttackStaminaCost,
			StaminaRegenPerSecond: t.StaminaRegenPerSecond,
			WindupOutboundMS:      t.WindupOutbound.Milliseconds(),
			WindupReturnMS:        t.WindupReturn.Milliseconds(),
			ReactionWindowMS:      t.ReactionWindow.Milliseconds(),
			TelegraphChance:       t.TelegraphChance,
			OpponentDamage:        t.OpponentDamage,
			BaseDamage:            t.BaseDamage,
			StrengthFactor:        t.StrengthFactor,
			CounterMultiplier:     t.CounterMultiplier,
			CounterReward:         t.CounterReward,
			WinReward:             t.WinReward,
		},
		Loot: h.loot,
	})
}

