package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/models/response_models"
	"mealplanner/internal/services"
	"mealplanner/pkg/utils"
)

type HallsController struct {
	hallService services.HallServiceInterface
}

func NewHallsController(hallService services.HallServiceInterface) *HallsController {
	return &HallsController{
		hallService: hallService,
	}
}

// GET /api/halls?lat=..&lon=..
func (h *HallsController) RankHallsHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.HandleServiceError(c, utils.ErrInvalidParameters)
		return
	}

	ranked := h.hallService.RankHalls(lat, lon)
	resp := response_models.HallsResponse{Halls: make([]response_models.RankedHall, 0, len(ranked))}
	for _, r := range ranked {
		resp.Halls = append(resp.Halls, response_models.RankedHall{Name: r.Name, DistanceMiles: r.DistanceMiles})
	}
	utils.RespondSuccess(c, resp)
}

// GET /api/halls/:name/menu
func (h *HallsController) HallMenuHandler(c *gin.Context) {
	hall, items, err := h.hallService.HallMenu(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.HallMenuResponse{
		Hall:      hall.Name,
		Latitude:  hall.Lat,
		Longitude: hall.Lon,
		Items:     make([]response_models.MenuItem, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, response_models.MenuItem{
			FoodName:   it.FoodName,
			Calorie:    it.Calorie,
			Protein:    it.Protein,
			MealType:   it.MealType,
			DiningHall: it.DiningHall,
			Allergens:  it.Allergens,
		})
	}
	utils.RespondSuccess(c, resp)
}
