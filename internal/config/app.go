package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const DotEnvFile = ".env"

type AppConfig struct {
	Game GameConfig
	Log  LogConfig
}

// LoadApp reads an optional dotenv file into the environment, without
// overriding variables that are already set, and then parses every section.
func LoadApp(dotenv string) (AppConfig, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	gameCfg, err := LoadGame()
	if err != nil {
		return AppConfig{}, err
	}
	if gameCfg.MaxSeed < 2 {
		return AppConfig{}, fmt.Errorf("SOLITAIRE_MAX_SEED must be at least 2, got %d", gameCfg.MaxSeed)
	}
	return AppConfig{
		Game: gameCfg,
		Log:  logCfg,
	}, nil
}
