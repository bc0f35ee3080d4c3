package config_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"mealplanner/internal/config"
	"mealplanner/pkg/logger"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Close(log)
			return nil
		},
	})
	return log, nil
}
