package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port             string
	SupabaseURL      string
	SupabaseAnonKey  string
	ResendAPIKey     string
	BookingFromEmail string
	WindowDays       int
	Environment      string
	LogLevel         string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnvWithDefault("PORT", "8080"),
		SupabaseURL:      os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:  os.Getenv("SUPABASE_ANON_KEY"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		BookingFromEmail: os.Getenv("BOOKING_FROM_EMAIL"),
		Environment:      getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
	}

	windowDays, err := strconv.Atoi(getEnvWithDefault("BOOKING_WINDOW_DAYS", "60"))
	if err != nil || windowDays <= 0 {
		return nil, fmt.Errorf("BOOKING_WINDOW_DAYS must be a positive integer")
	}
	cfg.WindowDays = windowDays

	// Validate required fields
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// EmailConfigured reports whether the Resend credentials are complete.
// When false the confirmation email step is skipped.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != "" && c.BookingFromEmail != ""
}
