package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealplanner/internal/api/controllers"
	"mealplanner/internal/models/response_models"
	"mealplanner/pkg/middleware"
	"mealplanner/pkg/utils"
)

func ProvideRouter(
	log *zap.Logger,
	mealPlanController *controllers.MealPlanController,
	hallsController *controllers.HallsController) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	r.NoMethod(func(c *gin.Context) {
		utils.HandleServiceError(c, utils.ErrMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response_models.ErrorResponse{Error: "Not found"})
	})

	RegisterRoutes(r, mealPlanController, hallsController)
	return r
}

func RegisterRoutes(r *gin.Engine,
	mealPlanController *controllers.MealPlanController,
	hallsController *controllers.HallsController) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	apiGroup.POST("/mealplan", mealPlanController.CreateMealPlanHandler)

	hallsGroup := apiGroup.Group("/halls")
	hallsGroup.GET("", hallsController.RankHallsHandler)
	hallsGroup.GET("/:name/menu", hallsController.HallMenuHandler)
}
