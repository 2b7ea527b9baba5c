package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	ModeTUI  = "tui"
	ModeLine = "line"
)

type Config struct {
	Stage       string `env:"STAGE" envDefault:"dev"`
	Mode        string `env:"SEABATTLE_MODE" envDefault:"tui"`
	FirstFleet  string `env:"SEABATTLE_FLEET_FIRST"`
	SecondFleet string `env:"SEABATTLE_FLEET_SECOND"`
	LogFile     string `env:"SEABATTLE_LOG_FILE" envDefault:"seabattle.log"`
	AltScreen   bool   `env:"SEABATTLE_ALT_SCREEN" envDefault:"true"`
}

// Load reads envFile into the environment unless STAGE is prod, then parses
// the environment into a Config. A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.Mode != ModeTUI && c.Mode != ModeLine {
		return cerr.ErrInvalidMode(c.Mode)
	}
	return nil
}

// Fleets returns both players' ships. An empty fleet setting falls back to
// the classic layout.
func (c Config) Fleets() ([]mb.Ship, []mb.Ship, error) {
	first, err := fleetOrDefault(c.FirstFleet)
	if err != nil {
		return nil, nil, fmt.Errorf("first fleet: %w", err)
	}

	second, err := fleetOrDefault(c.SecondFleet)
	if err != nil {
		return nil, nil, fmt.Errorf("second fleet: %w", err)
	}
	return first, second, nil
}

func fleetOrDefault(spec string) ([]mb.Ship, error) {
	if spec == "" {
		return mb.ClassicFleet(), nil
	}
	return mb.ParseFleet(spec)
}
