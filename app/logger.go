package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/config"
)

// NewLogger builds a zap logger for cfg: the production (JSON) flavour when
// cfg.Environment is "production", the development (console) flavour
// otherwise. Both write to stderr so stdout carries only the report.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("app: log level %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}
