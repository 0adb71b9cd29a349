package config

import (
	"fmt"

	"github.com/cockroachdb/apd"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all CLI configuration.
type Config struct {
	Evaluator EvaluatorConfig
	Logging   LogConfig
}

// EvaluatorConfig holds precision-context configuration.
type EvaluatorConfig struct {
	Precision uint32 `envconfig:"BIGMATH_PRECISION" default:"50"`
	Rounding  string `envconfig:"BIGMATH_ROUNDING" default:"half_even"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// rounders maps configuration names onto decimal rounding modes.
var rounders = map[string]string{
	"down":      apd.RoundDown,
	"up":        apd.RoundUp,
	"floor":     apd.RoundFloor,
	"ceiling":   apd.RoundCeiling,
	"half_down": apd.RoundHalfDown,
	"half_up":   apd.RoundHalfUp,
	"half_even": apd.RoundHalfEven,
}

// Context builds the evaluation context described by this section.
func (e EvaluatorConfig) Context() (*apd.Context, error) {
	if e.Precision == 0 {
		return nil, fmt.Errorf("precision must be at least 1")
	}
	r, ok := rounders[e.Rounding]
	if !ok {
		return nil, fmt.Errorf("unknown rounding mode %q", e.Rounding)
	}
	c := apd.BaseContext.WithPrecision(e.Precision)
	c.Rounding = r
	return c, nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Evaluator: EvaluatorConfig{
			Precision: 50,
			Rounding:  "half_even",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
