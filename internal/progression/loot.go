package progression

import (
	"errors"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// ErrInsufficientFunds is returned by RollLoot when cash is below the cost.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Rand draws uniform values in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// LootTable partitions [0, 1) into tiers: r > SuperRareAbove is super rare,
// RareAbove < r <= SuperRareAbove is rare, everything else is common.
type LootTable struct {
	Cost           int            `json:"cost"`
	RareAbove      float64        `json:"rare_above"`
	SuperRareAbove float64        `json:"super_rare_above"`
	Common         game.StatDelta `json:"common"`
	Rare           game.StatDelta `json:"rare"`
	SuperRare      game.StatDelta `json:"super_rare"`
}

func DefaultLootTable() LootTable {
	return LootTable{
		Cost:           500,
		RareAbove:      0.8,
		SuperRareAbove: 0.95,
		Common:         game.StatDelta{Strength: 2},
		Rare:           game.StatDelta{Agility: 20},
		SuperRare:      game.StatDelta{Strength: 50},
	}
}

var ErrInvalidLootTable = errors.New("invalid loot table")

func (t LootTable) Validate() error {
	if t.Cost < 0 {
		return ErrInvalidLootTable
	}
	if t.RareAbove < 0 || t.RareAbove > t.SuperRareAbove || t.SuperRareAbove > 1 {
		return ErrInvalidLootTable
	}
	if t.Common.Strength < 0 || t.Common.Agility < 0 || t.Rare.Strength < 0 || t.Rare.Agility < 0 ||
		t.SuperRare.Strength < 0 || t.SuperRare.Agility < 0 {
		return ErrInvalidLootTable
	}
	return nil
}

// Resolve maps a draw to exactly one tier.
func (t LootTable) Resolve(r float64) game.LootResult {
	switch {
	case r > t.SuperRareAbove:
		return game.LootResult{Tier: game.TierSuperRare, Delta: t.SuperRare}
	case r > t.RareAbove:
		return game.LootResult{Tier: game.TierRare, Delta: t.Rare}
	default:
		return game.LootResult{Tier: game.TierCommon, Delta: t.Common}
	}
}
