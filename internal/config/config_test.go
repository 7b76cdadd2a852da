package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 9 || cfg.Grid.Cols != 16 {
		t.Errorf("grid = %dx%d, want 9x16", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Derived.TickDuration != time.Second/60 {
		t.Errorf("TickDuration = %v, want 1/60 s", cfg.Derived.TickDuration)
	}
	if got := cfg.PrepTicks(1); got != 60 {
		t.Errorf("PrepTicks(1) = %d, want 60", got)
	}
	if cfg.Towers.Stomp.StartupTicks != 10 || cfg.Towers.Stomp.ActiveTicks != 60 {
		t.Errorf("stomp timings = %+v", cfg.Towers.Stomp)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	overlay := "player:\n  gold: 500\ntiming:\n  ticks_per_second: 30\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Gold != 500 {
		t.Errorf("gold = %d, want 500", cfg.Player.Gold)
	}
	if cfg.Player.Health != 10 {
		t.Errorf("health = %d, want default 10", cfg.Player.Health)
	}
	if cfg.Derived.TickDuration != time.Second/30 {
		t.Errorf("TickDuration = %v, want 1/30 s", cfg.Derived.TickDuration)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  ticks_per_second: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted ticks_per_second: 0")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load accepted a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Rounds.GoldBonus = 77
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Rounds.GoldBonus != 77 {
		t.Errorf("gold bonus = %d, want 77", back.Rounds.GoldBonus)
	}
}
