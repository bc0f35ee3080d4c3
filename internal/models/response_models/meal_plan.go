package response_models

type MealPlanResponse struct {
	MealPlan string `json:"mealPlan"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
