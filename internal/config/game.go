package config

import "github.com/caarlos0/env/v11"

type GameConfig struct {
	Seed        uint64 `env:"SOLITAIRE_SEED" envDefault:"0"`
	MaxSeed     uint64 `env:"SOLITAIRE_MAX_SEED" envDefault:"1000000"`
	ClearScreen bool   `env:"SOLITAIRE_CLEAR_SCREEN" envDefault:"true"`
}

func LoadGame() (GameConfig, error) {
	var cfg GameConfig
	err := env.Parse(&cfg)
	return cfg, err
}
