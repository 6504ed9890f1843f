package config

import "os"

// OracleModels defines which models to use for different analysis tasks.
type OracleModels struct {
	// Analysis is for full psychological profiles (deep, slow is fine).
	Analysis string `json:"analysis"`

	// Story is for scenario narrative generation (quality over speed).
	Story string `json:"story"`
}

// AIConfig holds the settings for the external analysis oracle
// (Anthropic Messages API).
type AIConfig struct {
	APIKey     string       `json:"-"` // Never serialize
	BaseURL    string       `json:"baseUrl"`
	APIVersion string       `json:"apiVersion"`
	Models     OracleModels `json:"models"`
	MaxTokens  int          `json:"maxTokens"`
	TimeoutMS  int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default oracle configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:     os.Getenv("ANTHROPIC_API_KEY"),
		BaseURL:    getEnvOrDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1/messages"),
		APIVersion: "2023-06-01",
		Models: OracleModels{
			Analysis: getEnvOrDefault("ORACLE_MODEL_ANALYSIS", "claude-3-5-sonnet-20241022"),
			Story:    getEnvOrDefault("ORACLE_MODEL_STORY", "claude-3-5-sonnet-20241022"),
		},
		MaxTokens: 8192,
		TimeoutMS: 60000,
	}
}

// IsEnabled returns true if the oracle API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
