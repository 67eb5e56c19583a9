package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/ib-77/ropcheck/pkg/logger"
	"github.com/ib-77/ropcheck/pkg/rop/check"
)

const Prefix = "PWCHECK"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	ModeFailFast   = "failfast"
	ModeAccumulate = "accumulate"
	ModeBoth       = "both"
)

type Config struct {
	Environment string       `envconfig:"ENV" default:"production" validate:"oneof=development production test"`
	Mode        string       `envconfig:"MODE" default:"both" validate:"oneof=failfast accumulate both"`
	MinLength   int          `envconfig:"MIN_LENGTH" default:"6" validate:"min=1,max=1024"`
	Parallel    bool         `envconfig:"PARALLEL" default:"false"`
	Workers     int          `envconfig:"WORKERS" default:"0" validate:"min=0,max=256"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	Format logger.Format `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
}

// Load reads the configuration from PWCHECK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Modes lists the composers to run, fail-fast first.
func (c *Config) Modes() []check.Mode {
	switch c.Mode {
	case ModeFailFast:
		return []check.Mode{check.ModeFailFast}
	case ModeAccumulate:
		return []check.Mode{check.ModeAccumulating}
	default:
		return []check.Mode{check.ModeFailFast, check.ModeAccumulating}
	}
}

func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Environment: c.Environment,
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
	}
}
