package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mealplanner/internal/models/db_models"
)

type fakeMenuRepo struct {
	mu      sync.Mutex
	rows    []db_models.FoodItem
	failFor map[string]bool
	calls   []string
}

func (f *fakeMenuRepo) ListByMealType(_ context.Context, mealType string) ([]db_models.FoodItem, error) {
	f.mu.Lock()
	f.calls = append(f.calls, mealType)
	f.mu.Unlock()

	if f.failFor[mealType] {
		return nil, errors.New("connection reset by peer")
	}
	var out []db_models.FoodItem
	for _, r := range f.rows {
		if strings.EqualFold(r.MealType, mealType) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) ListByHall(_ context.Context, hall string) ([]db_models.FoodItem, error) {
	if f.failFor["hall:"+hall] {
		return nil, errors.New("connection reset by peer")
	}
	var out []db_models.FoodItem
	for _, r := range f.rows {
		if r.DiningHall == hall {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	err   error
	saved []*db_models.Profile
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *db_models.Profile) error {
	f.saved = append(f.saved, p)
	return f.err
}

func (f *fakeProfileRepo) GetByUserID(context.Context, string) (*db_models.Profile, error) {
	return nil, nil
}

type fakeGenerator struct {
	plan   string
	err    error
	system string
	prompt string
}

func (f *fakeGenerator) GeneratePlan(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.system = systemPrompt
	f.prompt = userPrompt
	return f.plan, f.err
}

func ptr[T any](v T) *T { return &v }
