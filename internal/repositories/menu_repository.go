package repositories

import (
	"context"

	"gorm.io/gorm"

	"mealplanner/internal/models/db_models"
)

type MenuRepository interface {
	// ListByMealType matches meal_type case-insensitively.
	ListByMealType(ctx context.Context, mealType string) ([]db_models.FoodItem, error)
	ListByHall(ctx context.Context, hall string) ([]db_models.FoodItem, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListByMealType(ctx context.Context, mealType string) ([]db_models.FoodItem, error) {
	var items []db_models.FoodItem
	err := r.db.WithContext(ctx).
		Where("meal_type ILIKE ?", mealType).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) ListByHall(ctx context.Context, hall string) ([]db_models.FoodItem, error) {
	var items []db_models.FoodItem
	err := r.db.WithContext(ctx).
		Where("dining_hall = ?", hall).
		Order("meal_type").
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
