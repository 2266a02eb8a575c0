package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/jonalee1/adstock-visualization/internal/lib"
	"github.com/jonalee1/adstock-visualization/internal/lib/log"
)

// DefaultEnvFile is read when present; a missing file is not an error
const DefaultEnvFile = ".env"

type Config struct {
	Log    log.Config   `env:""`
	Output OutputConfig `env:""`
	Engine EngineConfig `env:""`
}

type OutputConfig struct {
	Format    string `env:"CURVES_OUTPUT,default=auto" validate:"required,oneof=auto table csv json"`
	Precision int    `env:"CURVES_PRECISION,default=2" validate:"gte=0,lte=10"`
}

type EngineConfig struct {
	Policy     string `env:"CURVES_POLICY,default=clamp" validate:"required,oneof=clamp reject"`
	MaxSamples int    `env:"CURVES_MAX_SAMPLES,default=10000" validate:"gte=2,lte=10000"`
}

// Default returns the configuration Load produces from an empty environment
func Default() *Config {
	return &Config{
		Log:    log.Config{Level: log.LogLevelWarn, Format: log.LogFormatConsole},
		Output: OutputConfig{Format: "auto", Precision: 2},
		Engine: EngineConfig{Policy: "clamp", MaxSamples: 10000},
	}
}

// LoadEnvFile loads variables from path into the process environment
// Variables that are already set win over the file
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
