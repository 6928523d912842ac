package storage

import (
	"context"
	"errors"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("record not found")

// Repository persists the boxer save slots.
type Repository interface {
	// Get returns the raw value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put creates or replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error

	// LoadStats returns the owner's stats; found is false when no record
	// exists yet.
	LoadStats(ctx context.Context, owner string) (stats game.Stats, found bool, err error)
	LoadSkills(ctx context.Context, owner string) (game.Skills, error)
	// SaveProfile writes both records in one transaction.
	SaveProfile(ctx context.Context, owner string, stats game.Stats, skills game.Skills) error
}
