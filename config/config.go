package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the environment settings for the service.
type Config struct {
	Port           string `env:"PORT" envDefault:"3001"`
	DatabaseURL    string `env:"DATABASE_URL"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
