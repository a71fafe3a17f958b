package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string        `env:"PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	FormEndpoint string        `env:"FORM_ENDPOINT" envDefault:"https://fleetforgetrucks.com/"`
	CartTTL      time.Duration `env:"CART_TTL" envDefault:"24h"`
}

var AppConfig *Config

func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, continue without it
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	AppConfig = cfg
	return nil
}
