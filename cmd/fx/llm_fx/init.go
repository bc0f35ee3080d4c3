package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"mealplanner/internal/config"
	"mealplanner/pkg/utils"
)

var Module = fx.Provide(ProvidePlanGenerator)

// ProvidePlanGenerator creates the completion client named by LLM_PROVIDER.
func ProvidePlanGenerator(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.PlanGeneratorInterface, error) {
	switch cfg.LLMProvider {
	case "openai":
		log.Info("initializing plan generator", zap.String("provider", "openai"), zap.String("model", cfg.OpenAIModel))
		return utils.NewOpenAIPlanClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil
	case "gemini":
		log.Info("initializing plan generator", zap.String("provider", "gemini"), zap.String("model", cfg.GeminiModel))
		client, err := utils.NewGeminiPlanClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
