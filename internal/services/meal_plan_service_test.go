package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	"mealplanner/pkg/utils"
)

func seededMenu() *fakeMenuRepo {
	return &fakeMenuRepo{rows: []db_models.FoodItem{
		{FoodName: "Waffles", Calorie: ptr(400.0), Protein: ptr(8.0), MealType: "Breakfast", DiningHall: "Wiley Dining"},
		{FoodName: "Far Bagel", Calorie: ptr(300.0), MealType: "Breakfast", DiningHall: "Earhart Dining"},
		{FoodName: "Veggie Wrap", Calorie: ptr(500.0), Protein: ptr(20.0), MealType: "lunch", DiningHall: "Windsor Dining", Allergens: ptr("Wheat, Vegetarian")},
		{FoodName: "Chicken Sandwich", MealType: "LUNCH", DiningHall: "Ford Dining", Allergens: ptr("Wheat")},
		{FoodName: "Steak", Calorie: ptr(700.0), Protein: ptr(50.0), MealType: "dinner", DiningHall: "Hillenbrand Dining"},
		{FoodName: "Salmon", Calorie: ptr(550.0), Protein: ptr(40.0), MealType: "dinner", DiningHall: "Ford Dining"},
	}}
}

func wileyInput() request_models.MealPlanInput {
	return request_models.MealPlanInput{
		WeightLbs:    150,
		HeightInches: 70,
		Lat:          40.428545,
		Lon:          -86.920841,
		Preferences:  []string{},
		Goal:         "maintain",
	}
}

func TestCreateMealPlanAtWileyDining(t *testing.T) {
	gen := &fakeGenerator{plan: "Breakfast at Wiley: Waffles"}
	svc := NewMealPlanService(campusHalls(t), NewMenuService(seededMenu(), zap.NewNop()), nil, gen, MealPlanOptions{}, zaptest.NewLogger(t))

	plan, err := svc.CreateMealPlan(context.Background(), wileyInput())
	if err != nil {
		t.Fatalf("CreateMealPlan: %v", err)
	}
	if plan != gen.plan {
		t.Errorf("plan = %q, want verbatim generator output", plan)
	}
	if gen.system != SystemPrompt {
		t.Errorf("system prompt = %q", gen.system)
	}

	for _, want := range []string{
		"The halls are: Wiley Dining (0.00 mi), ",
		"- Daily Calorie Goal: 2250 calories",
		"- Breakfast: 1125 calories",
		"- Lunch: 810 calories",
		"- Dinner: 315 calories",
		"- Waffles (400 cal, 8g protein)",
		"- Veggie Wrap (500 cal, 20g protein)",
		"- Chicken Sandwich (? cal, ?g protein)",
		"- Salmon (550 cal, 40g protein)",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, gen.prompt)
		}
	}
	// Earhart and Hillenbrand are not among the three nearest halls.
	for _, notWant := range []string{"Far Bagel", "Steak", "Earhart", "Hillenbrand"} {
		if strings.Contains(gen.prompt, notWant) {
			t.Errorf("prompt should not mention %q", notWant)
		}
	}
}

func TestCreateMealPlanGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("503 service unavailable")}
	svc := NewMealPlanService(campusHalls(t), NewMenuService(seededMenu(), zap.NewNop()), nil, gen, MealPlanOptions{}, zap.NewNop())

	_, err := svc.CreateMealPlan(context.Background(), wileyInput())
	if !errors.Is(err, utils.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestCreateMealPlanStoreOutageStillGenerates(t *testing.T) {
	repo := &fakeMenuRepo{failFor: map[string]bool{"breakfast": true, "lunch": true, "dinner": true}}
	gen := &fakeGenerator{plan: "eat something"}
	svc := NewMealPlanService(campusHalls(t), NewMenuService(repo, zap.NewNop()), nil, gen, MealPlanOptions{}, zap.NewNop())

	plan, err := svc.CreateMealPlan(context.Background(), wileyInput())
	if err != nil || plan != "eat something" {
		t.Fatalf("plan, err = %q, %v", plan, err)
	}
	if !strings.Contains(gen.prompt, "Breakfast Items:\n\n") {
		t.Errorf("expected empty breakfast list\n%s", gen.prompt)
	}
}

func TestCreateMealPlanAllergenFilterOption(t *testing.T) {
	in := wileyInput()
	in.Preferences = []string{"vegetarian"}

	gen := &fakeGenerator{plan: "ok"}
	svc := NewMealPlanService(campusHalls(t), NewMenuService(seededMenu(), zap.NewNop()), nil, gen, MealPlanOptions{AllergenFilter: true}, zap.NewNop())
	if _, err := svc.CreateMealPlan(context.Background(), in); err != nil {
		t.Fatalf("CreateMealPlan: %v", err)
	}
	if strings.Contains(gen.prompt, "Chicken Sandwich") {
		t.Error("non-vegetarian tagged item should be filtered")
	}
	if !strings.Contains(gen.prompt, "Veggie Wrap") || !strings.Contains(gen.prompt, "Waffles") {
		t.Errorf("vegetarian and untagged items should remain\n%s", gen.prompt)
	}
}

func TestCreateMealPlanGoalAndProfile(t *testing.T) {
	in := wileyInput()
	in.UserID = "user-42"
	in.Goal = "lose"
	in.Preferences = []string{"peanuts"}

	profiles := &fakeProfileRepo{err: errors.New("duplicate key")}
	gen := &fakeGenerator{plan: "ok"}
	svc := NewMealPlanService(campusHalls(t), NewMenuService(seededMenu(), zap.NewNop()), profiles, gen, MealPlanOptions{}, zap.NewNop())

	if _, err := svc.CreateMealPlan(context.Background(), in); err != nil {
		t.Fatalf("profile errors must not fail the request: %v", err)
	}
	if len(profiles.saved) != 1 {
		t.Fatalf("saved %d profiles, want 1", len(profiles.saved))
	}
	p := profiles.saved[0]
	if p.UserID != "user-42" || p.StartingWeight != 150 || p.Goal != "lose" || len(p.Restrictions) != 1 {
		t.Errorf("profile = %+v", p)
	}
	if !strings.Contains(gen.prompt, "- Daily Calorie Goal: 1750 calories") {
		t.Errorf("expected goal-adjusted target\n%s", gen.prompt)
	}
}

func TestCreateMealPlanSkipsProfileWithoutUserID(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := NewMealPlanService(campusHalls(t), NewMenuService(seededMenu(), zap.NewNop()), profiles, &fakeGenerator{}, MealPlanOptions{}, zap.NewNop())

	if _, err := svc.CreateMealPlan(context.Background(), wileyInput()); err != nil {
		t.Fatalf("CreateMealPlan: %v", err)
	}
	if len(profiles.saved) != 0 {
		t.Errorf("saved %d profiles, want 0", len(profiles.saved))
	}
}
