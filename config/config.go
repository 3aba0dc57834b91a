package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	// Server
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode
	MaxBodyBytes  int64  `mapstructure:"MAX_BODY_BYTES"`

	// AI service
	OpenAIKey         string  `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel       string  `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL     string  `mapstructure:"OPENAI_BASE_URL"` // empty means api.openai.com
	OpenAITemperature float32 `mapstructure:"OPENAI_TEMPERATURE"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug|info|warn|error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json|console

	// Result hand-off store. Empty REDIS_ADDR keeps results in process memory.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	ResultTTL     time.Duration `mapstructure:"RESULT_TTL"`

	// Requests per client IP per minute on /api; 0 turns limiting off.
	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":        ":8080",
	"APP_ENV":               "development",
	"MAX_BODY_BYTES":        2 << 20,
	"OPENAI_API_KEY":        "",
	"OPENAI_MODEL":          "gpt-4o-mini",
	"OPENAI_BASE_URL":       "",
	"OPENAI_TEMPERATURE":    0.7,
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "console",
	"REDIS_ADDR":            "",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"RESULT_TTL":            "30m",
	"RATE_LIMIT_PER_MINUTE": 0,
}

// LoadConfig reads configuration from config.yaml in path, if present, and
// from environment variables, which win.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Registered defaults make env-only keys visible to Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ResultTTL <= 0 {
		return fmt.Errorf("RESULT_TTL must be positive, got %s", c.ResultTTL)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.OpenAITemperature < 0 || c.OpenAITemperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be within [0, 2], got %g", c.OpenAITemperature)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute)
	}
	return nil
}
