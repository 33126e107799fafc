package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string
	DBName   string
	JWTKey   string

	SeedDemoData bool

	SendgridApiKey string
	EmailSender    string

	AvatarApiUrl string
	ReminderCron string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "3000"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBName:   getEnv("DB_NAME", "lumina.db"),
		JWTKey:   getEnv("JWT_SECRET_KEY", "defaultSecret"),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@lumina.academy"),

		AvatarApiUrl: getEnv("AVATAR_API_URL", "https://ui-avatars.com/api/"),
		ReminderCron: getEnv("REMINDER_CRON", "@every 10m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridApiKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Emails will be skipped.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves an environment variable as a boolean or returns the default boolean value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
