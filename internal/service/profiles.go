package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/dedupe"
	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/keys"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

var (
	ErrProfileUnavailable = errors.New("profile unavailable")
	ErrSaveFailed         = errors.New("failed to save profile")
)

// ProfileStore is the minimal repository interface required by Profiles.
type ProfileStore interface {
	LoadStats(ctx context.Context, owner string) (game.Stats, bool, error)
	LoadSkills(ctx context.Context, owner string) (game.Skills, error)
	SaveProfile(ctx context.Context, owner string, stats game.Stats, skills game.Skills) error
}

// Profiles hands out one shared *progression.Profile per owner so the fight
// loop and the loot endpoint mutate the same ledger.
type Profiles struct {
	store ProfileStore

	mu    sync.Mutex
	cache map[string]*progression.Profile
}

func NewProfiles(store ProfileStore) *Profiles {
	return &Profiles{store: store, cache: make(map[string]*progression.Profile)}
}

// Get returns the cached profile or loads it. Missing stats fall back to
// game.DefaultStats.
func (p *Profiles) Get(ctx context.Context, owner string) (*progression.Profile, error) {
	owner = keys.Owner(owner)
	if owner == "" {
		return nil, ErrProfileUnavailable
	}
	if prof := p.cached(owner); prof != nil {
		return prof, nil
	}
	v, err, _ := dedupe.ProfileGroup.Do(owner, func() (interface{}, error) {
		if prof := p.cached(owner); prof != nil {
			return prof, nil
		}
		prof, err := p.load(ctx, owner)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		if existing, ok := p.cache[owner]; ok {
			return existing, nil
		}
		p.cache[owner] = prof
		return prof, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*progression.Profile), nil
}

func (p *Profiles) cached(owner string) *progression.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cache[owner]
}

func (p *Profiles) load(ctx context.Context, owner string) (*progression.Profile, error) {
	stats, found, err := p.store.LoadStats(ctx, owner)
	if err != nil {
		logging.Error("failed to load stats", err, logging.Fields{constants.LogFieldOwner: owner})
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	if !found {
		stats = game.DefaultStats()
		logging.Info("no saved stats; using defaults", logging.Fields{constants.LogFieldOwner: owner})
	}
	skills, err := p.store.LoadSkills(ctx, owner)
	if err != nil {
		logging.Error("failed to load skills", err, logging.Fields{constants.LogFieldOwner: owner})
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	return progression.NewProfile(owner, stats, skills), nil
}

// Save flushes the profile's current records.
func (p *Profiles) Save(ctx context.Context, prof *progression.Profile) error {
	err := prof.Persist(func(stats game.Stats, skills game.Skills) error {
		return p.store.SaveProfile(ctx, prof.Owner(), stats, skills)
	})
	if err != nil {
		logging.Error("failed to save profile", err, logging.Fields{constants.LogFieldOwner: prof.Owner()})
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}
