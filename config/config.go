package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LLMProvider selects which chat-completions backend to call. Both speak the
// same wire protocol; they differ only in URL, model name and credentials.
type LLMProvider string

const (
	ProviderOpenAI   LLMProvider = "openai"
	ProviderDeepSeek LLMProvider = "deepseek"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// LLM configuration. Provider is chosen explicitly via LLM_PROVIDER
	// rather than sniffing which API key happens to be set.
	LLMProvider    LLMProvider
	LLMAPIKey      string
	LLMAPIURL      string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
}

// LoadConfig creates a new Config instance from environment variables.
// Secrets (API key, JWT secret, passwords) also accept a *_FILE variant
// pointing at a mounted secret file.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getSecret("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "menucraft"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		JWTSecret: getSecret("JWT_SECRET"),

		LLMAPIKey:      getSecret("LLM_API_KEY"),
		LLMTemperature: 0.9,
		LLMMaxTokens:   4096,
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	provider := LLMProvider(getEnv("LLM_PROVIDER", string(ProviderDeepSeek)))
	switch provider {
	case ProviderOpenAI:
		cfg.LLMProvider = ProviderOpenAI
		cfg.LLMAPIURL = getEnv("LLM_API_URL", "https://api.openai.com/v1/chat/completions")
		cfg.LLMModel = getEnv("LLM_MODEL", "gpt-4o-mini")
	case ProviderDeepSeek:
		cfg.LLMProvider = ProviderDeepSeek
		cfg.LLMAPIURL = getEnv("LLM_API_URL", "https://api.deepseek.com/v1/chat/completions")
		cfg.LLMModel = getEnv("LLM_MODEL", "deepseek-chat")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}

	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		temp, err := strconv.ParseFloat(tempStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE value %q: %w", tempStr, err)
		}
		cfg.LLMTemperature = temp
	}

	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		max, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_MAX_TOKENS value %q: %w", maxStr, err)
		}
		cfg.LLMMaxTokens = max
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a default.
func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// getSecret reads a sensitive value either directly from KEY or from the
// file named by KEY_FILE.
func getSecret(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}
