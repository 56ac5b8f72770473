package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	PrettyLogger bool `env:"PRETTY_LOGGER" env-default:"false"`
	HTTPServer
	Review
	Storage
}

type HTTPServer struct {
	Addr        string        `env:"SERVER_ADDRESS" env-default:"0.0.0.0:8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Review struct {
	AutoApproveDelay time.Duration `env:"AUTO_APPROVE_DELAY" env-default:"75s"`
	SweepSchedule    string        `env:"SWEEP_SCHEDULE" env-default:"@every 1m"`
	SeedSamples      bool          `env:"SEED_SAMPLES" env-default:"true"`
	// SeedPath overrides embedded sample reviews.
	SeedPath string `env:"SEED_PATH"`
}

type Storage struct {
	Kind         string `env:"STORAGE" env-default:"memory"`
	PostgresConn string `env:"POSTGRES_CONN"`
}

// MustLoad load config from environment
// variables. Panic if error occures.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("cannot read environment: " + err.Error())
	}

	return cfg
}

// Load reads config from environment variables and checks
// storage settings.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Kind {
	case StorageMemory:
	case StoragePostgres:
		if c.PostgresConn == "" {
			return fmt.Errorf("POSTGRES_CONN is required for %s storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage.Kind)
	}

	if c.AutoApproveDelay <= 0 {
		return fmt.Errorf("AUTO_APPROVE_DELAY must be positive, got %s", c.AutoApproveDelay)
	}

	return nil
}
