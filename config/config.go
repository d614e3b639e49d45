package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Anthropic AnthropicConfig
	Notion    NotionConfig
	Feeds     FeedsConfig
	Render    RenderConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	// Password is the single shared password accepted by /api/login.
	Password string
	// TokenSecret signs issued access tokens.
	TokenSecret string
	TokenTTL    time.Duration
	// LoginRatePerMin caps login attempts per minute across all callers.
	LoginRatePerMin int
}

type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

type NotionConfig struct {
	APIKey     string
	DatabaseID string
}

type FeedsConfig struct {
	// RedisAddr enables feed caching when non-empty.
	RedisAddr string
	CacheTTL  time.Duration
}

type RenderConfig struct {
	// ConverterBin is the external markdown-to-PDF converter command.
	// Rendering is disabled when empty; /generate-pdf then returns markdown.
	ConverterBin string
	OutputDir    string
	LogoPath     string
	SettingsPath string
	// Retention is how long generated files are kept. Zero disables the sweep.
	Retention time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Auth: AuthConfig{
			Password:        getEnv("APP_PASSWORD", ""),
			TokenSecret:     getEnv("TOKEN_SECRET", ""),
			TokenTTL:        getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
			LoginRatePerMin: getEnvAsInt("LOGIN_RATE_PER_MIN", 10),
		},
		Anthropic: AnthropicConfig{
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			Model:     getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens: getEnvAsInt("ANTHROPIC_MAX_TOKENS", 4000),
		},
		Notion: NotionConfig{
			APIKey:     getEnv("NOTION_API_KEY", ""),
			DatabaseID: getEnv("CRM_DATABASE_ID", ""),
		},
		Feeds: FeedsConfig{
			RedisAddr: getEnv("REDIS_ADDR", ""),
			CacheTTL:  getEnvAsDuration("FEED_CACHE_TTL", 5*time.Minute),
		},
		Render: RenderConfig{
			ConverterBin: getEnv("PDF_CONVERTER_BIN", ""),
			OutputDir:    getEnv("OUTPUT_DIR", "output"),
			LogoPath:     getEnv("LOGO_PATH", "logo.jpg"),
			SettingsPath: getEnv("SETTINGS_PATH", "settings.json"),
			Retention:    getEnvAsDuration("OUTPUT_RETENTION", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Anthropic.APIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}

	if c.Auth.Password == "" {
		return fmt.Errorf("APP_PASSWORD is required")
	}

	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
