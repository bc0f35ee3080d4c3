package controllers_fx

import (
	"go.uber.org/fx"

	"mealplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewMealPlanController),
	fx.Provide(controllers.NewHallsController))
