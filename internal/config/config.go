// Package config reads chronos settings from an INI file with environment
// overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-ini/ini"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	_DEFAULT_CONFIG_FILE     = "chronos.ini"
	_DEFAULT_CAPACITY        = 1000
	_DEFAULT_STRESS_DURATION = 10 * time.Second
	_DEFAULT_STRESS_ENTITIES = 10000
	_DEFAULT_STRESS_CHURN    = 100
	_DEFAULT_LOG_LEVEL       = "info"
)

// DefaultFile is the config path used when none is given.
const DefaultFile = _DEFAULT_CONFIG_FILE

// Config is the full set of chronos settings.
type Config struct {
	Core   CoreConfig
	Stress StressConfig
	Log    LogConfig
}

// CoreConfig sizes the entity manager.
type CoreConfig struct {
	InitialCapacity int
}

// StressConfig drives cmd/ecs-stress.
type StressConfig struct {
	Duration time.Duration
	Entities int
	// Churn is the number of entities removed and recreated per frame.
	Churn   int
	Seed    int64
	Profile string
}

type LogConfig struct {
	Level string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Core: CoreConfig{InitialCapacity: _DEFAULT_CAPACITY},
		Stress: StressConfig{
			Duration: _DEFAULT_STRESS_DURATION,
			Entities: _DEFAULT_STRESS_ENTITIES,
			Churn:    _DEFAULT_STRESS_CHURN,
			Seed:     1,
		},
		Log: LogConfig{Level: _DEFAULT_LOG_LEVEL},
	}
}

// Load reads path on top of the defaults. A missing file leaves the defaults
// in place; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}

	core := file.Section("core")
	cfg.Core.InitialCapacity = core.Key("initial_capacity").MustInt(cfg.Core.InitialCapacity)

	stress := file.Section("stress")
	cfg.Stress.Duration = stress.Key("duration").MustDuration(cfg.Stress.Duration)
	cfg.Stress.Entities = stress.Key("entities").MustInt(cfg.Stress.Entities)
	cfg.Stress.Churn = stress.Key("churn").MustInt(cfg.Stress.Churn)
	cfg.Stress.Seed = stress.Key("seed").MustInt64(cfg.Stress.Seed)
	cfg.Stress.Profile = stress.Key("profile").MustString(cfg.Stress.Profile)

	cfg.Log.Level = file.Section("log").Key("level").MustString(cfg.Log.Level)

	return cfg, cfg.Validate()
}

// LoadEnv loads the given dotenv files into the process environment, skipping
// files that do not exist, and applies CHRONOS_* overrides to cfg.
func LoadEnv(cfg *Config, files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load env file %s", f)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// ApplyEnv overrides cfg from CHRONOS_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := envInt("CHRONOS_CAPACITY", &cfg.Core.InitialCapacity); err != nil {
		return err
	}
	if err := envInt("CHRONOS_STRESS_ENTITIES", &cfg.Stress.Entities); err != nil {
		return err
	}
	if err := envInt("CHRONOS_STRESS_CHURN", &cfg.Stress.Churn); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("CHRONOS_STRESS_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "CHRONOS_STRESS_DURATION")
		}
		cfg.Stress.Duration = d
	}
	if v, ok := os.LookupEnv("CHRONOS_PROFILE"); ok {
		cfg.Stress.Profile = v
	}
	if v, ok := os.LookupEnv("CHRONOS_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrap(err, name)
	}
	*dst = n
	return nil
}

// Validate rejects settings the binaries cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Core.InitialCapacity < 0:
		return errors.Errorf("core.initial_capacity must not be negative: %d", c.Core.InitialCapacity)
	case c.Stress.Entities <= 0:
		return errors.Errorf("stress.entities must be positive: %d", c.Stress.Entities)
	case c.Stress.Churn < 0:
		return errors.Errorf("stress.churn must not be negative: %d", c.Stress.Churn)
	case c.Stress.Duration <= 0:
		return errors.Errorf("stress.duration must be positive: %s", c.Stress.Duration)
	}

	switch c.Stress.Profile {
	case "", "cpu", "mem":
	default:
		return errors.Errorf("stress.profile must be cpu or mem: %q", c.Stress.Profile)
	}
	return nil
}
