package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"klondike/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	closer, err := Init(config.LogConfig{Level: "DEBUG", File: path, MaxMB: 1})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("global level = %v, want debug", zerolog.GlobalLevel())
	}
	log.Debug().Str("from", "waste").Msg("move")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"from":"waste"`) {
		t.Fatalf("log missing event: %s", data)
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	closer, err := Init(config.LogConfig{Level: "loud", File: "-"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer closer.Close()
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("global level = %v, want info", zerolog.GlobalLevel())
	}
}
