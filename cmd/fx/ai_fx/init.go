package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"vibecation/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient)

// PlannerConfig holds configuration for the planner AI client
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePlannerClient creates a planner client based on environment
// variables. Without an API key the built-in sample planner serves fixed
// itineraries so the rest of the system stays usable.
func ProvidePlannerClient() (utils.PlannerAIInterface, error) {
	config := getPlannerConfig()

	if config.Provider == "sample" {
		log.Println("Using the built-in sample planner")
		return utils.NewSamplePlannerClient(), nil
	}
	if config.APIKey == "" {
		log.Printf("No API key configured for %s provider, falling back to the sample planner", config.Provider)
		return utils.NewSamplePlannerClient(), nil
	}

	log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)

	return utils.NewPlannerAI(config.Provider, config.APIKey, config.Model)
}

// getPlannerConfig reads configuration from environment variables
func getPlannerConfig() PlannerConfig {
	provider := strings.ToLower(getEnvWithDefault("PLANNER_PROVIDER", "openai"))

	var apiKey, model string

	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
