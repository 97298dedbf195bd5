package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port            string
	SupabaseURL     string
	SupabaseAnonKey string
	MongoDBURI      string
	MongoDBPassword string
	Environment     string
	LogLevel        string

	// EmailJS credentials and templates. When ServiceID is empty the server
	// falls back to console notifications.
	EmailJSServiceID          string
	EmailJSPublicKey          string
	EmailJSTemplateNewBooking string
	EmailJSTemplateStatus     string
	AdminEmail                string

	// MinAdvanceDays is the server-enforced minimum booking window.
	MinAdvanceDays int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_URL_ANON_KEY"),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),

		EmailJSServiceID:          os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSPublicKey:          os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailJSTemplateNewBooking: os.Getenv("EMAILJS_TEMPLATE_ID_NEW_BOOKING"),
		EmailJSTemplateStatus:     os.Getenv("EMAILJS_TEMPLATE_ID_BOOKING_STATUS"),
		AdminEmail:                getEnvWithDefault("ADMIN_EMAIL", "admin@example.com"),
	}

	minAdvance := getEnvWithDefault("MIN_ADVANCE_DAYS", "7")
	days, err := strconv.Atoi(minAdvance)
	if err != nil || days < 0 {
		return nil, fmt.Errorf("MIN_ADVANCE_DAYS must be a non-negative integer, got %q", minAdvance)
	}
	cfg.MinAdvanceDays = days

	// Validate required fields
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
	}
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
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

// EmailConfigured reports whether every EmailJS credential is present.
func (c *Config) EmailConfigured() bool {
	return c.EmailJSServiceID != "" &&
		c.EmailJSPublicKey != "" &&
		c.EmailJSTemplateNewBooking != "" &&
		c.EmailJSTemplateStatus != ""
}
