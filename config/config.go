package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Progress cache behavior
	ProgressCacheTTLSeconds int
	GuestProgressEnabled    bool

	// Headless CMS (microCMS-compatible) article source
	MicroCMSServiceDomain string
	MicroCMSAPIKey        string

	// External chatbot answer API
	ChatbotAPIURL string
	ChatbotAPIKey string

	EmailSender string
	Password    string // SMTP Password
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
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		ProgressCacheTTLSeconds: getEnvInt("PROGRESS_CACHE_TTL_SECONDS", 30),
		GuestProgressEnabled:    getEnvBool("GUEST_PROGRESS_ENABLED", true),

		MicroCMSServiceDomain: getEnv("MICROCMS_SERVICE_DOMAIN", ""),
		MicroCMSAPIKey:        getEnv("MICROCMS_API_KEY", ""),

		ChatbotAPIURL: getEnv("CHATBOT_API_URL", ""),
		ChatbotAPIKey: getEnv("CHATBOT_API_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.MicroCMSServiceDomain == "" {
		log.Println("Warning: MICROCMS_SERVICE_DOMAIN not set. CMS article routes will return an error.")
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

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
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
