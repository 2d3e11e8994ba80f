package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"akurat-backend/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	Stage       string
	LogLevel    logger.LogLevel
	BackendPort string
	DebugMode   bool
	FrontendURL string
	// Cookies
	CookieDomain             string
	CookieSameSite           string
	RefreshTokenValidityDays int
	// AWS
	AwsRegion          string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	// Cognito
	UserPoolID       string
	UserPoolClientID string
	// Sign-up policy
	AcceptedEmailDomains []string
	AutoConfirmedEmails  []string
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// Loads the default configuration values.
// It reads the environment variables from the .env file, if present,
// and returns a Config struct with the loaded values.
func LoadDefaultConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file: ", err)
	}

	return &Config{
		// Application
		Stage:       getEnv("STAGE", "development"),
		LogLevel:    logger.LogLevel(getEnv("LOG_LEVEL", "DEBUG")),
		BackendPort: getEnv("BACKEND_PORT", "4000"),
		DebugMode:   getEnv("DEBUG_MODE", "false") == "true",
		FrontendURL: getEnv("FRONTEND_URL", ""),
		// Cookies
		CookieDomain:             getEnv("COOKIE_DOMAIN", ""),
		CookieSameSite:           getEnv("COOKIE_SAME_SITE", "strict"),
		RefreshTokenValidityDays: getEnvInt("REFRESH_TOKEN_VALIDITY_DAYS", 30),
		// AWS
		AwsRegion:          getEnv("AWS_REGION", "eu-central-1"),
		AwsAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AwsSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		// Cognito
		UserPoolID:       getEnv("USER_POOL_ID", ""),
		UserPoolClientID: getEnv("USER_POOL_CLIENT_ID", ""),
		// Sign-up policy
		AcceptedEmailDomains: getEnvList("ACCEPTED_EMAIL_DOMAINS", nil),
		AutoConfirmedEmails:  getEnvList("AUTO_CONFIRMED_EMAILS", nil),
	}
}
