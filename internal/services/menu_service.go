package services

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mealplanner/internal/models/db_models"
	"mealplanner/internal/repositories"
	"mealplanner/pkg/utils"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

type MenuItem struct {
	FoodName   string
	Calorie    *float64
	Protein    *float64
	MealType   string
	DiningHall string
	Allergens  []string
}

type MealItems struct {
	Breakfast []MenuItem
	Lunch     []MenuItem
	Dinner    []MenuItem
}

type MenuServiceInterface interface {
	// FetchMeals never fails: store errors are logged and yield no items.
	FetchMeals(ctx context.Context, mealType string) []MenuItem
	FetchAllMeals(ctx context.Context) MealItems
	ListHallMenu(ctx context.Context, hall string) ([]MenuItem, error)
}

type MenuService struct {
	menuRepo repositories.MenuRepository
	log      *zap.Logger
}

func NewMenuService(menuRepo repositories.MenuRepository, log *zap.Logger) MenuServiceInterface {
	return &MenuService{
		menuRepo: menuRepo,
		log:      log,
	}
}

func (m *MenuService) FetchMeals(ctx context.Context, mealType string) []MenuItem {
	rows, err := m.menuRepo.ListByMealType(ctx, mealType)
	if err != nil {
		m.log.Error("retrieve meal items", zap.String("meal_type", mealType), zap.Error(err))
		return []MenuItem{}
	}
	return toMenuItems(rows)
}

// FetchAllMeals loads the three meals concurrently. Each fetch is
// independent, so one failing store call only empties its own meal.
func (m *MenuService) FetchAllMeals(ctx context.Context) MealItems {
	var out MealItems
	var g errgroup.Group
	g.Go(func() error {
		out.Breakfast = m.FetchMeals(ctx, MealBreakfast)
		return nil
	})
	g.Go(func() error {
		out.Lunch = m.FetchMeals(ctx, MealLunch)
		return nil
	})
	g.Go(func() error {
		out.Dinner = m.FetchMeals(ctx, MealDinner)
		return nil
	})
	_ = g.Wait()
	return out
}

func (m *MenuService) ListHallMenu(ctx context.Context, hall string) ([]MenuItem, error) {
	rows, err := m.menuRepo.ListByHall(ctx, hall)
	if err != nil {
		m.log.Error("retrieve hall menu", zap.String("hall", hall), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toMenuItems(rows), nil
}

// FilterByHalls keeps items served at one of the ranked halls, preserving
// order. Items without a hall never match.
func FilterByHalls(items []MenuItem, ranked []RankedHall) []MenuItem {
	allowed := make(map[string]struct{}, len(ranked))
	for _, h := range ranked {
		allowed[h.Name] = struct{}{}
	}
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if item.DiningHall == "" {
			continue
		}
		if _, ok := allowed[item.DiningHall]; ok {
			out = append(out, item)
		}
	}
	return out
}

// FilterByAllergens applies dietary restrictions to tagged items.
// Untagged items always pass. "vegetarian" and "vegan" are opt-in tags: a
// user restricted to them only gets items carrying the tag. Any other
// restriction excludes items carrying it.
func FilterByAllergens(items []MenuItem, restrictions []string) []MenuItem {
	wanted := make(map[string]struct{}, len(restrictions))
	for _, r := range restrictions {
		wanted[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	_, vegetarian := wanted["vegetarian"]
	_, vegan := wanted["vegan"]

	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if len(item.Allergens) == 0 {
			out = append(out, item)
			continue
		}
		if vegetarian && !slices.Contains(item.Allergens, "vegetarian") {
			continue
		}
		if vegan && !slices.Contains(item.Allergens, "vegan") {
			continue
		}
		if carriesRestricted(item.Allergens, wanted) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func carriesRestricted(allergens []string, restricted map[string]struct{}) bool {
	for _, a := range allergens {
		if a == "vegetarian" || a == "vegan" {
			continue
		}
		if _, ok := restricted[a]; ok {
			return true
		}
	}
	return false
}

func toMenuItems(rows []db_models.FoodItem) []MenuItem {
	items := make([]MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, MenuItem{
			FoodName:   row.FoodName,
			Calorie:    row.Calorie,
			Protein:    row.Protein,
			MealType:   row.MealType,
			DiningHall: row.DiningHall,
			Allergens:  splitAllergens(row.Allergens),
		})
	}
	return items
}

// splitAllergens lower-cases and trims a CSV tag column.
func splitAllergens(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	parts := strings.Split(*raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
