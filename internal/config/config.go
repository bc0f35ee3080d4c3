package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at start-up.
type Config struct {
	Env  string
	Port string

	PostgresURL      string
	PostgresPassword string
	AutoMigrate      bool

	LLMProvider   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string

	// HallsFile overrides the embedded dining hall table when set.
	HallsFile             string
	AllergenFilterEnabled bool
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:              getEnvWithDefault("ENV", "development"),
		Port:             getEnvWithDefault("PORT", "8080"),
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		LLMProvider:      strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "openai")),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnvWithDefault("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		HallsFile:        os.Getenv("HALLS_FILE"),
	}

	var err error
	if cfg.AutoMigrate, err = getBoolEnv("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if cfg.AllergenFilterEnabled, err = getBoolEnv("ALLERGEN_FILTER_ENABLED", false); err != nil {
		return nil, err
	}

	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required when using the openai provider")
		}
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required when using the gemini provider")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q, use 'openai' or 'gemini'", cfg.LLMProvider)
	}
	return cfg, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
