package halls_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"mealplanner/internal/config"
	"mealplanner/internal/services"
)

var Module = fx.Provide(
	provideHallTable, provideHallService)

func provideHallTable(cfg *config.Config, log *zap.Logger) (services.HallTable, error) {
	table, err := services.LoadHallTable(cfg.HallsFile)
	if err != nil {
		return services.HallTable{}, err
	}
	log.Info("dining halls loaded", zap.Int("count", table.Len()), zap.String("file", cfg.HallsFile))
	return table, nil
}

func provideHallService(table services.HallTable, menuService services.MenuServiceInterface) services.HallServiceInterface {
	return services.NewHallService(table, menuService)
}
