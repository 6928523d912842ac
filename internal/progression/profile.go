package progression

import (
	"sync"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// Profile is the in-memory copy of a boxer's persisted records. It is shared
// by the fight loop (strength reads, rewards) and the loot endpoint, so every
// read-then-write on cash happens under one lock.
type Profile struct {
	mu sync.Mutex
	// saveMu orders writes to storage: a snapshot is never written after a
	// newer one.
	saveMu sync.Mutex
	owner  string
	stats  game.Stats
	skills game.Skills
}

func NewProfile(owner string, stats game.Stats, skills game.Skills) *Profile {
	return &Profile{owner: owner, stats: stats, skills: append(game.Skills(nil), skills...)}
}

func (p *Profile) Owner() string { return p.owner }

func (p *Profile) Stats() game.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *Profile) Skills() game.Skills {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append(game.Skills(nil), p.skills...)
}

// Credit adds cash and returns the resulting stats. Negative amounts are
// ignored; debits go through RollLoot.
func (p *Profile) Credit(amount int) game.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount > 0 {
		p.stats.Cash += amount
	}
	return p.stats
}

// RollLoot pays for and resolves one roll. On ErrInsufficientFunds the stats
// are left untouched.
func (p *Profile) RollLoot(table LootTable, rng Rand) (game.LootResult, game.Stats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stats.Cash < table.Cost {
		return game.LootResult{}, p.stats, ErrInsufficientFunds
	}
	p.stats.Cash -= table.Cost
	res := table.Resolve(rng.Float64())
	res.Delta.Apply(&p.stats)
	return res, p.stats, nil
}

// Persist snapshots the records and hands them to write while holding the
// save lock, so concurrent saves reach storage in snapshot order.
func (p *Profile) Persist(write func(stats game.Stats, skills game.Skills) error) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()
	return write(p.Stats(), p.Skills())
}
