// Package logging builds the process-wide zap logger for chronos binaries.
package logging

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var baseConfig = []byte(`{
	"level": "info",
	"outputPaths": ["stderr"],
	"errorOutputPaths": ["stderr"],
	"encoding": "console",
	"encoderConfig": {
		"messageKey": "message",
		"levelKey": "level",
		"timeKey": "time",
		"nameKey": "logger",
		"levelEncoder": "lowercase",
		"timeEncoder": "iso8601"
	}
}`)

// New builds a console logger at the given level ("debug", "info", "warn",
// "error"), tagged with the component name.
func New(level string, component string) (*zap.Logger, error) {
	var cfg zap.Config
	if err := json.Unmarshal(baseConfig, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse base log config")
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	if component != "" {
		logger = logger.Named(component)
	}
	return logger, nil
}

// ParseLevel converts a level name; "warning" is accepted for warn.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "warning" {
		level = "warn"
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "log level %q", level)
	}
	return lvl, nil
}
