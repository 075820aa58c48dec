// SPDX-License-Identifier: MIT
package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger from "log.level" (debug, info, warn, error)
// and "log.development" (console output instead of JSON).
func NewLogger() (*zap.Logger, error) {
	level := GetString("log.level")
	if level == "" {
		level = "info"
	}
	return BuildLogger(level, GetBool("log.development"))
}

// BuildLogger creates a logger at the given level
func BuildLogger(level string, development bool) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}
