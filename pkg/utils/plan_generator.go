package utils

import "context"

// PlanGeneratorInterface sends one system message and one user message to
// a hosted chat model and returns the first completion's text.
type PlanGeneratorInterface interface {
	GeneratePlan(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
