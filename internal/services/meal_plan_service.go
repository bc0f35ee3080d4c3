package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	"mealplanner/internal/repositories"
	"mealplanner/pkg/utils"
)

// nearestHallCount is how many halls feed the menu filter.
const nearestHallCount = 3

type MealPlanServiceInterface interface {
	CreateMealPlan(ctx context.Context, in request_models.MealPlanInput) (string, error)
}

type MealPlanOptions struct {
	AllergenFilter bool
}

type MealPlanService struct {
	halls       HallTable
	menuService MenuServiceInterface
	profileRepo repositories.ProfileRepository
	generator   utils.PlanGeneratorInterface
	opts        MealPlanOptions
	log         *zap.Logger
}

func NewMealPlanService(
	halls HallTable,
	menuService MenuServiceInterface,
	profileRepo repositories.ProfileRepository,
	generator utils.PlanGeneratorInterface,
	opts MealPlanOptions,
	log *zap.Logger,
) MealPlanServiceInterface {
	return &MealPlanService{
		halls:       halls,
		menuService: menuService,
		profileRepo: profileRepo,
		generator:   generator,
		opts:        opts,
		log:         log,
	}
}

// CreateMealPlan runs the whole pipeline. Only the completion call can fail
// the request; menu and profile store errors degrade silently.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, in request_models.MealPlanInput) (string, error) {
	s.saveProfile(ctx, in)

	closest := TopN(RankNearest(GeoPoint{Lat: in.Lat, Lon: in.Lon}, s.halls), nearestHallCount)
	split := MealSplit(AdjustForGoal(DailyCalories(in.WeightLbs), in.Goal))

	all := s.menuService.FetchAllMeals(ctx)
	items := MealItems{
		Breakfast: s.filter(all.Breakfast, closest, in.Preferences),
		Lunch:     s.filter(all.Lunch, closest, in.Preferences),
		Dinner:    s.filter(all.Dinner, closest, in.Preferences),
	}

	s.log.Debug("meal plan inputs",
		zap.Any("closest_halls", closest),
		zap.Float64("daily_calories", split.Daily),
		zap.Int("breakfast_items", len(items.Breakfast)),
		zap.Int("lunch_items", len(items.Lunch)),
		zap.Int("dinner_items", len(items.Dinner)),
	)

	prompt := RenderPrompt(in, closest, split, items)
	plan, err := s.generator.GeneratePlan(ctx, SystemPrompt, prompt)
	if err != nil {
		s.log.Error("generate meal plan", zap.Error(err))
		return "", fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	return plan, nil
}

func (s *MealPlanService) filter(items []MenuItem, closest []RankedHall, prefs []string) []MenuItem {
	items = FilterByHalls(items, closest)
	if s.opts.AllergenFilter {
		items = FilterByAllergens(items, prefs)
	}
	return items
}

func (s *MealPlanService) saveProfile(ctx context.Context, in request_models.MealPlanInput) {
	if in.UserID == "" || s.profileRepo == nil {
		return
	}
	profile := &db_models.Profile{
		UserID:         in.UserID,
		StartingWeight: in.WeightLbs,
		HeightInches:   in.HeightInches,
		Goal:           in.Goal,
		Restrictions:   in.Preferences,
		UserLat:        in.Lat,
		UserLon:        in.Lon,
		PreferredFood:  in.PreferredFood,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.log.Error("save user profile", zap.String("user_id", in.UserID), zap.Error(err))
	}
}
