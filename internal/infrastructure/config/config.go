package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/flashdeck/backend/internal/validator"
)

type Config struct {
	ServerAddress   string        `mapstructure:"server_address" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	DBPath          string        `mapstructure:"db_path" validate:"required"`
	CORSOrigins     []string      `mapstructure:"cors_origins" validate:"min=1,dive,required"`

	// Flashcard generation
	LLMURL    string `mapstructure:"llm_url" validate:"required,url"` // OpenAI-compatible endpoint
	LLMModel  string `mapstructure:"llm_model" validate:"required"`
	LLMAPIKey string `mapstructure:"llm_api_key"`

	// Study client
	APIURL          string `mapstructure:"api_url" validate:"required,url"`
	RecorderWorkers int    `mapstructure:"recorder_workers" validate:"min=1,max=64"`
}

var defaults = map[string]any{
	"server_address":   ":8080",
	"shutdown_timeout": "10s",
	"db_path":          "flashdeck.db",
	"cors_origins":     []string{"http://localhost:3000"},
	"llm_url":          "https://openrouter.ai/api",
	"llm_model":        "openai/gpt-4o-mini",
	"llm_api_key":      "",
	"api_url":          "http://localhost:8080",
	"recorder_workers": 2,
}

// Load reads an optional .env file, then the environment, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	// Keys map to upper-cased env vars, e.g. db_path -> DB_PATH.
	v.AutomaticEnv()

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
