package utils

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration sourced from the environment.
type Config struct {
	BotToken    string `env:"BOT_TOKEN"`
	DataFile    string `env:"DATA_FILE" envDefault:"users.json"`
	Port        string `env:"PORT" envDefault:"8080"`
	AdminRoleID string `env:"ADMIN_ROLE_ID"`
}

// LoadConfig reads an optional .env file and parses the environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine, real deployments inject the environment directly.
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
