package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mealplanner/internal/models/db_models"
)

type ProfileRepository interface {
	// Upsert inserts the profile or overwrites the stored one with the same user id.
	Upsert(ctx context.Context, profile *db_models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*db_models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"starting_weight", "height_inches", "goal", "restrictions",
			"user_lat", "user_lon", "preferred_food", "updated_at",
		}),
	}).Create(profile).Error
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
