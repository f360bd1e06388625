package config

import "testing"

func TestLoadGameDefaults(t *testing.T) {
	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.MaxSeed != 1000000 {
		t.Fatalf("MaxSeed = %d, want 1000000", cfg.MaxSeed)
	}
	if !cfg.ClearScreen {
		t.Fatal("ClearScreen should default to true")
	}
}

func TestLoadGameOverrides(t *testing.T) {
	t.Setenv("SOLITAIRE_SEED", "42")
	t.Setenv("SOLITAIRE_CLEAR_SCREEN", "false")

	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.ClearScreen {
		t.Fatalf("unexpected game config: %+v", cfg)
	}
}

func TestLoadGameRejectsBadSeed(t *testing.T) {
	t.Setenv("SOLITAIRE_SEED", "-3")

	if _, err := LoadGame(); err == nil {
		t.Fatal("LoadGame() expected error, got nil")
	}
}
