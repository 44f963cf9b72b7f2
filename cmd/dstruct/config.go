package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joeshaw/envdecode"
	"github.com/viant/dstruct"
	"github.com/viant/dstruct/internal/logging"
)

// Config represents CLI environment configuration
type Config struct {
	// LogLevel ENV: DSTRUCT_LOG_LEVEL
	LogLevel string `env:"DSTRUCT_LOG_LEVEL,default=info"`
	// DateLayouts extra Go time layouts tried before built-in ones, semicolon separated. ENV: DSTRUCT_DATE_LAYOUTS
	DateLayouts []string `env:"DSTRUCT_DATE_LAYOUTS"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Logger returns configured logger
func (c *Config) Logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// Options returns registry options
func (c *Config) Options(logger *slog.Logger) []dstruct.Option {
	var result = []dstruct.Option{dstruct.WithLogger(logger)}
	if len(c.DateLayouts) > 0 {
		result = append(result, dstruct.WithDateLayouts(c.DateLayouts...))
	}
	return result
}
