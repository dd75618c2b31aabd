package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Logging
	LogLevel string
	// SMTP Configuration
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SMTPFromEmail   string // Sender address, must be accepted by the relay
	SMTPTimeout     time.Duration
	SMTPImplicitTLS bool // true for SMTPS (port 465), false for STARTTLS
	// Contact form
	ContactEmailTo  string // Agency inbox receiving notifications
	AgencyName      string
	AgencyWebsite   string
	DisplayTimezone string
	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// SMTP Configuration
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:   getEnv("SMTP_FROM_EMAIL", "hallo@nordlicht-digital.de"),
		SMTPTimeout:     time.Duration(getEnvInt("SMTP_TIMEOUT_SECONDS", 10)) * time.Second,
		SMTPImplicitTLS: getEnvBool("SMTP_IMPLICIT_TLS", false),
		// Contact form
		ContactEmailTo:  getEnv("CONTACT_EMAIL_TO", "anfragen@nordlicht-digital.de"),
		AgencyName:      getEnv("AGENCY_NAME", "Nordlicht Digital"),
		AgencyWebsite:   strings.TrimRight(getEnv("AGENCY_WEBSITE", "https://nordlicht-digital.de"), "/"),
		DisplayTimezone: getEnv("DISPLAY_TIMEZONE", "Europe/Berlin"),
		// CORS
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"https://nordlicht-digital.de",
			"https://www.nordlicht-digital.de",
		}),
	}

	if cfg.SMTPHost == "" {
		log.Println("WARNING: SMTP_HOST is missing. Contact submissions will fail until it is configured.")
	}

	if cfg.SMTPTimeout <= 0 {
		cfg.SMTPTimeout = 10 * time.Second
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
