package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is built once at startup and
// passed down explicitly; nothing mutates it afterwards.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret        string
	JWTExpireMinutes int

	GinMode     string
	Port        string
	Environment string
}

func Load() *Config {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "ats"),
		DBPassword: getEnv("DB_PASSWORD", "ats"),
		DBName:     getEnv("DB_NAME", "ats"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 60),

		GinMode:     getEnv("GIN_MODE", "debug"),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
