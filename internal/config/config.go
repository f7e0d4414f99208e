package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

type Config struct {
	// Auth
	JWTSecret string `toml:"jwt_secret"`

	// Supabase Storage, used for image annotations
	SupabaseURL           string `toml:"supabase_url"`
	SupabaseServiceKey    string `toml:"supabase_service_key"`
	SupabaseStorageBucket string `toml:"supabase_storage_bucket"`
	MaxImageBytes         int64  `toml:"max_image_bytes"`

	// Database
	DatabaseURL string `toml:"database_url"`

	// Server
	Port           string  `toml:"port"`
	Environment    string  `toml:"environment"`
	BaseURL        string  `toml:"base_url"`
	FrontendURL    string  `toml:"frontend_url"`
	LogLevel       string  `toml:"log_level"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		SupabaseStorageBucket: "annotation-images",
		MaxImageBytes:         5 << 20,
		Port:                  "8080",
		Environment:           "development",
		BaseURL:               "http://localhost:8080",
		FrontendURL:           "http://localhost:5173",
		LogLevel:              "info",
		RateLimitRPS:          10,
		RateLimitBurst:        20,
	}
}

// Load builds the configuration from defaults, then the TOML file at path (if
// path is not empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)

	cfg.SupabaseURL = getEnv("SUPABASE_URL", cfg.SupabaseURL)
	cfg.SupabaseServiceKey = getEnv("SUPABASE_SERVICE_KEY", cfg.SupabaseServiceKey)
	cfg.SupabaseStorageBucket = getEnv("SUPABASE_STORAGE_BUCKET", cfg.SupabaseStorageBucket)

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)
	cfg.FrontendURL = getEnv("FRONTEND_URL", cfg.FrontendURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.MaxImageBytes, err = getEnvInt64("MAX_IMAGE_BYTES", cfg.MaxImageBytes); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return nil, err
	}
	burst, err := getEnvInt64("RATE_LIMIT_BURST", int64(cfg.RateLimitBurst))
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst = int(burst)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.FrontendURL == "" {
		return fmt.Errorf("FRONTEND_URL is required for CORS")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// StorageEnabled reports whether image storage credentials are present.
func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
