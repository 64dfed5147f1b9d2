package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the client's environment-driven configuration.
type Config struct {
	ServerURL    string `env:"MYTHOS_SERVER_URL" envDefault:"wss://play.mythos.example/ws"`
	APIBaseURL   string `env:"MYTHOS_API_URL" envDefault:"https://play.mythos.example"`
	AuthToken    string `env:"MYTHOS_AUTH_TOKEN"`
	Debug        bool   `env:"DEBUG"`
	HistoryLimit int    `env:"MYTHOS_HISTORY_LIMIT" envDefault:"500"`
	Transcript   bool   `env:"MYTHOS_TRANSCRIPT" envDefault:"true"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
