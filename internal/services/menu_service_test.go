package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"mealplanner/internal/models/db_models"
	"mealplanner/pkg/utils"
)

func names(items []MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.FoodName
	}
	return out
}

func equalNames(t *testing.T, got []MenuItem, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("items = %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("items = %v, want %v", g, want)
		}
	}
}

func TestFilterByHallsKeepsTopThreeInOrder(t *testing.T) {
	ranked := []RankedHall{{Name: "A", DistanceMiles: 0.1}, {Name: "B", DistanceMiles: 0.2}, {Name: "C", DistanceMiles: 0.3}}
	items := []MenuItem{
		{FoodName: "a1", DiningHall: "A"},
		{FoodName: "d1", DiningHall: "D"},
		{FoodName: "c1", DiningHall: "C"},
		{FoodName: "b1", DiningHall: "B"},
		{FoodName: "a1", DiningHall: "A"},
		{FoodName: "none", DiningHall: ""},
		{FoodName: "d2", DiningHall: "D"},
		{FoodName: "lower", DiningHall: "a"},
	}

	got := FilterByHalls(items, ranked)
	equalNames(t, got, "a1", "c1", "b1", "a1")
	for _, it := range got {
		if it.DiningHall == "D" || it.DiningHall == "" {
			t.Errorf("unexpected hall %q kept", it.DiningHall)
		}
	}
}

func TestFilterByHallsEmpty(t *testing.T) {
	if got := FilterByHalls(nil, []RankedHall{{Name: "A"}}); len(got) != 0 {
		t.Errorf("got %v", got)
	}
	if got := FilterByHalls([]MenuItem{{FoodName: "x", DiningHall: "A"}}, nil); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestFilterByAllergens(t *testing.T) {
	items := []MenuItem{
		{FoodName: "plain rice"},
		{FoodName: "cheese pizza", Allergens: []string{"milk", "wheat", "vegetarian"}},
		{FoodName: "tofu bowl", Allergens: []string{"soy", "vegetarian", "vegan"}},
		{FoodName: "chicken", Allergens: []string{"gluten"}},
		{FoodName: "pb cookie", Allergens: []string{"peanuts", "vegetarian"}},
	}

	tests := []struct {
		name         string
		restrictions []string
		want         []string
	}{
		{"no restrictions", nil, []string{"plain rice", "cheese pizza", "tofu bowl", "chicken", "pb cookie"}},
		{"peanut allergy", []string{"Peanuts"}, []string{"plain rice", "cheese pizza", "tofu bowl", "chicken"}},
		{"vegetarian", []string{"vegetarian"}, []string{"plain rice", "cheese pizza", "tofu bowl", "pb cookie"}},
		{"vegan and soy", []string{"vegan", "soy"}, []string{"plain rice"}},
		{"free text ignored", []string{"likes spicy food"}, []string{"plain rice", "cheese pizza", "tofu bowl", "chicken", "pb cookie"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equalNames(t, FilterByAllergens(items, tt.restrictions), tt.want...)
		})
	}
}

func TestFetchMealsConvertsRows(t *testing.T) {
	repo := &fakeMenuRepo{rows: []db_models.FoodItem{
		{FoodName: "Oatmeal", Calorie: ptr(150.0), MealType: "Breakfast", DiningHall: "Ford Dining", Allergens: ptr(" Oats , Vegan,")},
		{FoodName: "Burger", MealType: "Lunch", DiningHall: "Ford Dining"},
	}}
	svc := NewMenuService(repo, zap.NewNop())

	got := svc.FetchMeals(context.Background(), "breakfast")
	equalNames(t, got, "Oatmeal")
	if got[0].Protein != nil || *got[0].Calorie != 150 {
		t.Errorf("item = %+v", got[0])
	}
	if len(got[0].Allergens) != 2 || got[0].Allergens[0] != "oats" || got[0].Allergens[1] != "vegan" {
		t.Errorf("allergens = %q", got[0].Allergens)
	}
}

func TestFetchMealsSwallowsStoreErrors(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	repo := &fakeMenuRepo{failFor: map[string]bool{"lunch": true}}
	svc := NewMenuService(repo, zap.New(core))

	got := svc.FetchMeals(context.Background(), "lunch")
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
	entries := logs.FilterField(zap.String("meal_type", "lunch")).All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
}

func TestFetchAllMealsIndependent(t *testing.T) {
	repo := &fakeMenuRepo{
		rows: []db_models.FoodItem{
			{FoodName: "Eggs", MealType: "breakfast", DiningHall: "Wiley Dining"},
			{FoodName: "Soup", MealType: "lunch", DiningHall: "Wiley Dining"},
			{FoodName: "Pasta", MealType: "Dinner", DiningHall: "Wiley Dining"},
		},
		failFor: map[string]bool{"lunch": true},
	}
	svc := NewMenuService(repo, zap.NewNop())

	all := svc.FetchAllMeals(context.Background())
	equalNames(t, all.Breakfast, "Eggs")
	equalNames(t, all.Lunch)
	equalNames(t, all.Dinner, "Pasta")
	if len(repo.calls) != 3 {
		t.Errorf("store calls = %v, want 3", repo.calls)
	}
}

func TestListHallMenuStoreError(t *testing.T) {
	repo := &fakeMenuRepo{failFor: map[string]bool{"hall:Ford Dining": true}}
	svc := NewMenuService(repo, zap.NewNop())

	if _, err := svc.ListHallMenu(context.Background(), "Ford Dining"); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}
