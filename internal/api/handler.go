package api

import (
	"github.com/kawertyff-source/Simungboxing-128/internal/arena"
	"github.com/kawertyff-source/Simungboxing-128/internal/engine"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
	"github.com/kawertyff-source/Simungboxing-128/internal/service"
)

// Handler groups the profile, loot and fight handlers.
type Handler struct {
	profiles *service.Profiles
	arenas   *arena.Manager
	tuning   engine.Tuning
	loot     progression.LootTable
	tickHz   int
	rng      progression.Rand
}

// NewHandler creates a Handler. rng may be nil, in which case loot draws use
// the shared math/rand source.
func NewHandler(profiles *service.Profiles, arenas *arena.Manager, tuning engine.Tuning, loot progression.LootTable, tickHz int, rng progression.Rand) *Handler {
	if rng == nil {
		rng = service.SharedRand{}
	}
	return &Handler{
		profiles: profiles,
		arenas:   arenas,
		tuning:   tuning,
		loot:     loot,
		tickHz:   tickHz,
		rng:      rng,
	}
}
