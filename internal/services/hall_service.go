package services

import (
	"context"

	"mealplanner/pkg/utils"
)

type HallServiceInterface interface {
	RankHalls(lat, lon float64) []RankedHall
	HallMenu(ctx context.Context, name string) (DiningHall, []MenuItem, error)
}

type HallService struct {
	halls       HallTable
	menuService MenuServiceInterface
}

func NewHallService(halls HallTable, menuService MenuServiceInterface) HallServiceInterface {
	return &HallService{
		halls:       halls,
		menuService: menuService,
	}
}

func (h *HallService) RankHalls(lat, lon float64) []RankedHall {
	return RankNearest(GeoPoint{Lat: lat, Lon: lon}, h.halls)
}

func (h *HallService) HallMenu(ctx context.Context, name string) (DiningHall, []MenuItem, error) {
	hall, ok := h.halls.Lookup(name)
	if !ok {
		return DiningHall{}, nil, utils.ErrHallNotFound
	}
	items, err := h.menuService.ListHallMenu(ctx, hall.Name)
	if err != nil {
		return DiningHall{}, nil, err
	}
	return hall, items, nil
}
