package config

import (
	"fmt"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int    `env:"PORT" envDefault:"3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./brain.db"`
	JWTSecret    string `env:"JWT_SECRET" validate:"required"`
	BcryptCost   int    `env:"BCRYPT_COST" validate:"min=4,max=31"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from a .env file (when present) and the
// environment, then validates it. The JWT secret has no usable default and
// must be supplied.
func Load() (*Config, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		BcryptCost: bcrypt.DefaultCost,
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
