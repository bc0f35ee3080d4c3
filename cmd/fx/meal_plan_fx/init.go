package meal_plan_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"mealplanner/internal/config"
	"mealplanner/internal/repositories"
	"mealplanner/internal/services"
	"mealplanner/pkg/utils"
)

var Module = fx.Provide(provideMealPlanService)

func provideMealPlanService(
	cfg *config.Config,
	halls services.HallTable,
	menuService services.MenuServiceInterface,
	profileRepo repositories.ProfileRepository,
	generator utils.PlanGeneratorInterface,
	log *zap.Logger,
) services.MealPlanServiceInterface {
	return services.NewMealPlanService(
		halls,
		menuService,
		profileRepo,
		generator,
		services.MealPlanOptions{AllergenFilter: cfg.AllergenFilterEnabled},
		log,
	)
}
