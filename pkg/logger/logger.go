// Package logger configures the process-wide zap logger used by every afftrack component.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/afftrack/internal/config"
)

const ServiceName = "afftrack"

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Setup replaces the global zap logger; components log through zap.L().
func Setup(conf *config.Config) error {
	lvl, ok := levels[strings.ToLower(conf.LogLvl)]
	if !ok {
		return fmt.Errorf("unknown LOG_LVL %q, want one of debug, info, warn, error", conf.LogLvl)
	}

	l, err := zapConfig(lvl).Build()
	if err != nil {
		return fmt.Errorf("build afftrack logger: %w", err)
	}
	zap.ReplaceGlobals(l.Named(ServiceName))
	return nil
}

func zapConfig(lvl zapcore.Level) zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "component",
			CallerKey:      "caller",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		InitialFields:    map[string]interface{}{"service": ServiceName},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
