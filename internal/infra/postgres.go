package infra

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mealplanner/internal/config"
	"mealplanner/internal/models/db_models"
)

// InitPostgresql opens the connection pool. A separate access key, when
// configured, replaces the password embedded in the URL.
func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn, err := buildDSN(cfg.PostgresURL, cfg.PostgresPassword)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&db_models.FoodItem{}, &db_models.Profile{}); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("database migrations applied")
	}

	log.Info("postgres connection established")
	return db, nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
		return
	}
	log.Info("postgres connection closed")
}

func buildDSN(rawURL, password string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("POSTGRES_URL is not set")
	}
	if password == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse POSTGRES_URL: %w", err)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, password)
	return u.String(), nil
}
