package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
	"github.com/kawertyff-source/Simungboxing-128/internal/protocol"
	"github.com/kawertyff-source/Simungboxing-128/internal/service"
)

type profileResponse struct {
	Email  string         `json:"email"`
	Stats  protocol.Stats `json:"stats"`
	Skills game.Skills    `json:"skills"`
}

func statsPayload(s game.Stats) protocol.Stats {
	return protocol.Stats{Strength: s.Strength, Agility: s.Agility, Cash: s.Cash}
}

// GetProfile returns the session owner's stats and skills.
func (h *Handler) GetProfile(c *gin.Context) {
	prof, err := h.profiles.Get(c.Request.Context(), ownerFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadProfile})
		return
	}
	skills := prof.Skills()
	if skills == nil {
		skills = game.Skills{}
	}
	c.JSON(http.StatusOK, profileResponse{Email: prof.Owner(), Stats: statsPayload(prof.Stats()), Skills: skills})
}

// RollLoot spends the loot cost on one weighted draw.
func (h *Handler) RollLoot(c *gin.Context) {
	res, stats, err := service.RollLoot(c.Request.Context(), h.profiles, ownerFromContext(c), h.loot, h.rng)
	switch {
	case err == nil:
	case errors.Is(err, progression.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, protocol.LootRejected{
			Reason:  constants.ReasonInsufficientFunds,
			Message: constants.ErrInsufficientFunds,
		})
		return
	case errors.Is(err, service.ErrSaveFailed):
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveProfile})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadProfile})
		return
	}
	c.JSON(http.StatusOK, protocol.LootResolved{
		Tier: res.Tier.String(),
		Item: res.Tier.DisplayName(),
		StatDelta: protocol.StatDelta{
			Strength: res.Delta.Strength,
			Agility:  res.Delta.Agility,
		},
		Stats: statsPayload(stats),
	})
}
