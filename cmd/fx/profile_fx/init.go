package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mealplanner/internal/repositories"
)

var Module = fx.Provide(provideProfileRepo)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}
