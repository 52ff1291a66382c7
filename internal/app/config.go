package app

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPath string // .hcl file or directory

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Tick is the pause between two ticks. Zero runs ticks back to back.
	Tick time.Duration
	// MaxTicks aborts a run that is still active after that many ticks.
	// Zero means unlimited.
	MaxTicks int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	if cfg.Tick < 0 {
		return nil, fmt.Errorf("tick interval must not be negative, got %s", cfg.Tick)
	}
	if cfg.MaxTicks < 0 {
		return nil, fmt.Errorf("max-ticks must not be negative, got %d", cfg.MaxTicks)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port out of range: %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
