// Package logger builds the application's zap logger. Handlers and
// background workers receive a *zap.Logger through their constructors
// rather than using a package-level instance.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger appropriate for the environment: human-readable
// console output in dev, JSON at Info level everywhere else. The name is
// attached so log lines from the HTTP server and the notifier consumer can
// be told apart.
func New(env, name string) *zap.Logger {
	var log *zap.Logger
	if env == "dev" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		log, _ = cfg.Build()
	} else {
		log, _ = zap.NewProduction()
	}
	return log.Named(name)
}
