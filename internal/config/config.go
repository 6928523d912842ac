package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/engine"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

// combatEntry mirrors engine.Tuning with durations in milliseconds. It is
// pre-filled with the defaults so the file only needs the keys it changes.
type combatEntry struct {
	AttackStaminaCost        float64 `json:"attack_stamina_cost"`
	StaminaRegenPerSecond    float64 `json:"stamina_regen_per_second"`
	WindupOutboundMS         int     `json:"windup_outbound_ms"`
	WindupReturnMS           int     `json:"windup_return_ms"`
	TelegraphChance          float64 `json:"telegraph_chance"`
	NormalizeTelegraphChance bool    `json:"normalize_telegraph_chance"`
	ReferenceTickHz          float64 `json:"reference_tick_hz"`
	ReactionWindowMS         int     `json:"reaction_window_ms"`
	RecoverMS                int     `json:"recover_ms"`
	OpponentDamage           float64 `json:"opponent_damage"`
	BaseDamage               float64 `json:"base_damage"`
	StrengthFactor           float64 `json:"strength_factor"`
	CounterMultiplier        float64 `json:"counter_multiplier"`
	CounterReward            int     `json:"counter_reward"`
	WinReward                int     `json:"win_reward"`
}

func combatFromTuning(t engine.Tuning) combatEntry {
	return combatEntry{
		AttackStaminaCost:        t.AttackStaminaCost,
		StaminaRegenPerSecond:    t.StaminaRegenPerSecond,
		WindupOutboundMS:         int(t.WindupOutbound / time.Millisecond),
		WindupReturnMS:           int(t.WindupReturn / time.Millisecond),
		TelegraphChance:          t.TelegraphChance,
		NormalizeTelegraphChance: t.NormalizeTelegraphChance,
		ReferenceTickHz:          t.ReferenceTickHz,
		ReactionWindowMS:         int(t.ReactionWindow / time.Millisecond),
		RecoverMS:                int(t.RecoverDuration / time.Millisecond),
		OpponentDamage:           t.OpponentDamage,
		BaseDamage:               t.BaseDamage,
		StrengthFactor:           t.StrengthFactor,
		CounterMultiplier:        t.CounterMultiplier,
		CounterReward:            t.CounterReward,
		WinReward:                t.WinReward,
	}
}

func (c combatEntry) tuning(base engine.Tuning) engine.Tuning {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	base.AttackStaminaCost = c.AttackStaminaCost
	base.StaminaRegenPerSecond = c.StaminaRegenPerSecond
	base.WindupOutbound = ms(c.WindupOutboundMS)
	base.WindupReturn = ms(c.WindupReturnMS)
	base.TelegraphChance = c.TelegraphChance
	base.NormalizeTelegraphChance = c.NormalizeTelegraphChance
	base.ReferenceTickHz = c.ReferenceTickHz
	base.ReactionWindow = ms(c.ReactionWindowMS)
	base.RecoverDuration = ms(c.RecoverMS)
	base.OpponentDamage = c.OpponentDamage
	base.BaseDamage = c.BaseDamage
	base.StrengthFactor = c.StrengthFactor
	base.CounterMultiplier = c.CounterMultiplier
	base.CounterReward = c.CounterReward
	base.WinReward = c.WinReward
	return base
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	DatabasePath string          `json:"database_path"`
	TickHz       int             `json:"tick_hz"`
	Combat       json.RawMessage `json:"combat"`
	Loot         json.RawMessage `json:"loot"`
}

// LoadedConfig is the server configuration after defaults are applied.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string
	TickHz        int
	Tuning        engine.Tuning
	Loot          progression.LootTable
}

const (
	DefaultAddress = ":8080"
	DefaultTickHz  = 60
	maxTickHz      = 1000
)

// Default returns the configuration used when no file is present.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: DefaultAddress,
		DatabasePath:  constants.DefaultDBPath,
		TickHz:        DefaultTickHz,
		Tuning:        engine.DefaultTuning(),
		Loot:          progression.DefaultLootTable(),
	}
}

// LoadConfig reads the configuration file at path. Every key is optional;
// combat and loot values override the defaults one by one.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return parse(path, b)
}

// LoadConfigOrDefault behaves like LoadConfig but treats a missing file as
// an empty one.
func LoadConfigOrDefault(path string) (*LoadedConfig, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func parse(path string, b []byte) (*LoadedConfig, error) {
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg := Default()
	if rc.Server != nil && strings.TrimSpace(rc.Server.Address) != "" {
		cfg.ServerAddress = strings.TrimSpace(rc.Server.Address)
	}
	if strings.TrimSpace(rc.DatabasePath) != "" {
		cfg.DatabasePath = strings.TrimSpace(rc.DatabasePath)
	}
	if rc.TickHz != 0 {
		if rc.TickHz < 0 || rc.TickHz > maxTickHz {
			return nil, fmt.Errorf("config file %s: tick_hz must be within [1, %d]", path, maxTickHz)
		}
		cfg.TickHz = rc.TickHz
	}

	if len(rc.Combat) > 0 {
		entry := combatFromTuning(cfg.Tuning)
		if err := json.Unmarshal(rc.Combat, &entry); err != nil {
			return nil, fmt.Errorf("config file %s: invalid combat section: %w", path, err)
		}
		cfg.Tuning = entry.tuning(cfg.Tuning)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if len(rc.Loot) > 0 {
		if err := json.Unmarshal(rc.Loot, &cfg.Loot); err != nil {
			return nil, fmt.Errorf("config file %s: invalid loot section: %w", path, err)
		}
	}
	if err := cfg.Loot.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads a .env file from the working directory when one exists.
// Variables already set in the process environment win.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	present := make([]string, 0, len(filenames))
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}
