package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// Config selects level, encoding and destinations of a logger
type Config struct {
	Level       string
	Encoding    string
	OutputPaths []string
}

// DefaultConfig logs info and above as json to stdout
func DefaultConfig() Config {
	return Config{Level: "info", Encoding: "json", OutputPaths: []string{"stdout"}}
}

// New builds a sugared logger from cfg
func New(cfg Config) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Encoding
	zcfg.OutputPaths = cfg.OutputPaths
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if level == zapcore.DebugLevel {
		zcfg.Development = true
	}

	base, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return base.Sugar(), nil
}

// Default returns the same logger all the time
func Default() *zap.SugaredLogger {
	if logger != nil {
		return logger
	}

	l, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}

	logger = l
	return logger
}
