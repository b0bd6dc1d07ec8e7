package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds everything the process reads from the environment.
// Loaded once in main and passed down by value; nothing in here is mutated
// after startup.
type Config struct {
	Port        string
	DatabaseURL string

	// JWTSecret signs tokens for the local-auth user routes.
	JWTSecret []byte

	// SystemKey guards the /api/system endpoints.
	SystemKey string

	// SMTP settings for vote notifications. When SMTPHost is empty the
	// mailer is disabled and notifications are logged instead of sent.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string

	// RegisteredVoters is the fixed baseline used for the turnout figure
	// on the stats endpoint.
	RegisteredVoters int

	LogLevel string
}

func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=electovote password=electovote dbname=electovote port=5432 sslmode=disable"),
		JWTSecret:        []byte(os.Getenv("JWT_SECRET")),
		SystemKey:        os.Getenv("APP_SYSTEM_KEY"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUser:         getEnv("SMTP_USER", os.Getenv("EMAIL_USER")),
		SMTPPassword:     getEnv("SMTP_PASSWORD", os.Getenv("EMAIL_PASSWORD")),
		EmailFrom:        getEnv("EMAIL_FROM", "noreply@electvote.com"),
		RegisteredVoters: getEnvInt("REGISTERED_VOTERS", 12847),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if len(cfg.JWTSecret) == 0 {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
