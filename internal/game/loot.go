package game

// LootTier is the rarity of a loot roll.
type LootTier uint8

const (
	TierCommon LootTier = iota
	TierRare
	TierSuperRare
)

func (t LootTier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierRare:
		return "rare"
	case TierSuperRare:
		return "super_rare"
	}
	return "unknown"
}

// DisplayName is the item shown to the player for a tier.
func (t LootTier) DisplayName() string {
	switch t {
	case TierCommon:
		return "COMMON GLOVES"
	case TierRare:
		return "SR: GAZELLE PUNCH"
	case TierSuperRare:
		return "SSR: DEMPSEY ROLL"
	}
	return ""
}

// StatDelta is the change a loot result applies to Stats.
type StatDelta struct {
	Strength int `json:"strength,omitempty"`
	Agility  int `json:"agility,omitempty"`
}

// Apply adds the delta to s.
func (d StatDelta) Apply(s *Stats) {
	s.Strength += d.Strength
	s.Agility += d.Agility
}

// LootResult is the outcome of a single roll.
type LootResult struct {
	Tier  LootTier
	Delta StatDelta
}
