package service

import (
	"context"
	"math/rand"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

// SharedRand draws from the package-level math/rand source, which is safe
// for concurrent handlers.
type SharedRand struct{}

func (SharedRand) Float64() float64 { return rand.Float64() }

// RollLoot debits the owner's cash, resolves a tier and persists the result
// immediately. A rejected roll returns progression.ErrInsufficientFunds and
// writes nothing.
func RollLoot(ctx context.Context, profiles *Profiles, owner string, table progression.LootTable, rng progression.Rand) (game.LootResult, game.Stats, error) {
	prof, err := profiles.Get(ctx, owner)
	if err != nil {
		return game.LootResult{}, game.Stats{}, err
	}
	res, stats, err := prof.RollLoot(table, rng)
	if err != nil {
		return res, stats, err
	}
	logging.Info("loot resolved", logging.Fields{
		constants.LogFieldOwner: prof.Owner(),
		constants.LogFieldTier:  res.Tier.String(),
		constants.LogFieldCash:  stats.Cash,
	})
	if err := profiles.Save(ctx, prof); err != nil {
		return res, stats, err
	}
	return res, stats, nil
}
