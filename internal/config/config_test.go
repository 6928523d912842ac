package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/engine"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != DefaultAddress || cfg.TickHz != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Tuning != engine.DefaultTuning() || cfg.Loot != progression.DefaultLootTable() {
		t.Fatalf("expected default tuning and loot table")
	}
}

func TestLoadConfigRequiresFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfigPartialOverrides(t *testing.T) {
	p := writeFile(t, "cfg.json", `{
		"server": {"address": ":9090"},
		"database_path": "/tmp/boxing.db",
		"tick_hz": 30,
		"combat": {"reaction_window_ms": 450, "normalize_telegraph_chance": true},
		"loot": {"cost": 250}
	}`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerAddress != ":9090" || cfg.DatabasePath != "/tmp/boxing.db" || cfg.TickHz != 30 {
		t.Fatalf("unexpected top-level values: %+v", cfg)
	}
	if cfg.Tuning.ReactionWindow != 450*time.Millisecond || !cfg.Tuning.NormalizeTelegraphChance {
		t.Fatalf("combat overrides not applied: %+v", cfg.Tuning)
	}
	if cfg.Tuning.WindupOutbound != 80*time.Millisecond || cfg.Tuning.AttackStaminaCost != 10 {
		t.Fatalf("untouched combat values changed: %+v", cfg.Tuning)
	}
	if cfg.Loot.Cost != 250 || cfg.Loot.SuperRareAbove != 0.95 {
		t.Fatalf("unexpected loot table: %+v", cfg.Loot)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"tick":      `{"tick_hz": -1}`,
		"telegraph": `{"combat": {"telegraph_chance": 1.5}}`,
		"loot":      `{"loot": {"rare_above": 0.99}}`,
		"syntax":    `{"combat": `,
	}
	for name, body := range cases {
		p := writeFile(t, name+".json", body)
		if _, err := LoadConfig(p); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	p := writeFile(t, "tuning.json", `{"combat": {"counter_multiplier": 0.5}}`)
	if _, err := LoadConfig(p); !errors.Is(err, engine.ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
}

func TestLoadEnvSkipsMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadEnvKeepsExistingValues(t *testing.T) {
	p := writeFile(t, ".env", "COUNTERPUNCH_TEST_A=file\nCOUNTERPUNCH_TEST_B=file\n")
	t.Setenv("COUNTERPUNCH_TEST_A", "process")
	os.Unsetenv("COUNTERPUNCH_TEST_B")
	defer os.Unsetenv("COUNTERPUNCH_TEST_B")
	if err := LoadEnv(p); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("COUNTERPUNCH_TEST_A"); got != "process" {
		t.Fatalf("A = %q", got)
	}
	if got := os.Getenv("COUNTERPUNCH_TEST_B"); got != "file" {
		t.Fatalf("B = %q", got)
	}
}
