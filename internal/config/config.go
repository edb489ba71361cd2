package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":8080"`
	RateLimitPerSec  int    `env:"RATE_LIMIT_PER_SEC" envDefault:"10"`
	RateLimitBurst   int    `env:"RATE_LIMIT_BURST" envDefault:"20"`
	RequestTimeout   int    `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds
	ShutdownTimeout  int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	MaxGoalsPerSide  int    `env:"MAX_GOALS_PER_SIDE" envDefault:"4"`
	DatabaseURL      string `env:"DATABASE_URL" envDefault:"-"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN" envDefault:"-"`
	TelegramDebug    bool   `env:"TELEGRAM_DEBUG" envDefault:"false"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.HTTPAddr = getEnvWithDefault("HTTP_ADDR", ":8080")
	cfg.RateLimitPerSec = getEnvIntWithDefault("RATE_LIMIT_PER_SEC", 10)
	cfg.RateLimitBurst = getEnvIntWithDefault("RATE_LIMIT_BURST", 20)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.ShutdownTimeout = getEnvIntWithDefault("SHUTDOWN_TIMEOUT", 10)
	cfg.MaxGoalsPerSide = getEnvIntWithDefault("MAX_GOALS_PER_SIDE", 4)
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramDebug = getEnvBoolWithDefault("TELEGRAM_DEBUG", false)

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
