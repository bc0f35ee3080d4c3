package controllers

import (
	"github.com/gin-gonic/gin"

	"mealplanner/internal/models/request_models"
	"mealplanner/internal/models/response_models"
	"mealplanner/internal/services"
	"mealplanner/pkg/utils"
)

type MealPlanController struct {
	mealPlanService services.MealPlanServiceInterface
}

func NewMealPlanController(mealPlanService services.MealPlanServiceInterface) *MealPlanController {
	return &MealPlanController{
		mealPlanService: mealPlanService,
	}
}

// POST /api/mealplan
func (m *MealPlanController) CreateMealPlanHandler(c *gin.Context) {
	var req request_models.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidParameters)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidParameters)
		return
	}

	plan, err := m.mealPlanService.CreateMealPlan(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.MealPlanResponse{MealPlan: plan})
}
