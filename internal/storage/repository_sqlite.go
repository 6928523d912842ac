package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/keys"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var rec SaveRecord
	if err := r.db.WithContext(ctx).Where("record_key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

func (r *sqliteRepository) Put(ctx context.Context, key string, value []byte) error {
	return upsert(r.db.WithContext(ctx), key, value)
}

// upsert writes key/value keyed by the primary key so repeated saves update
// the existing row in place.
func upsert(db *gorm.DB, key string, value []byte) error {
	rec := SaveRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (r *sqliteRepository) LoadStats(ctx context.Context, owner string) (game.Stats, bool, error) {
	b, err := r.Get(ctx, keys.StatsKey(owner))
	if errors.Is(err, ErrNotFound) {
		return game.Stats{}, false, nil
	}
	if err != nil {
		return game.Stats{}, false, err
	}
	var s game.Stats
	if err := json.Unmarshal(b, &s); err != nil {
		return game.Stats{}, false, fmt.Errorf("decode %s: %w", keys.StatsKey(owner), err)
	}
	return s, true, nil
}

func (r *sqliteRepository) LoadSkills(ctx context.Context, owner string) (game.Skills, error) {
	b, err := r.Get(ctx, keys.SkillsKey(owner))
	if errors.Is(err, ErrNotFound) {
		return game.Skills{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s game.Skills
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keys.SkillsKey(owner), err)
	}
	return s, nil
}

func (r *sqliteRepository) SaveProfile(ctx context.Context, owner string, stats game.Stats, skills game.Skills) error {
	sb, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if skills == nil {
		skills = game.Skills{}
	}
	kb, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, keys.StatsKey(owner), sb); err != nil {
			return err
		}
		return upsert(tx, keys.SkillsKey(owner), kb)
	})
}
