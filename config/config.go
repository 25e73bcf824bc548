package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the runtime knobs for the POS service. Values come from
// the environment (a .env file is loaded in main for local runs).
type Config struct {
	Port        string
	StoreDriver string // "postgres" or "memory"

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr string // empty disables the product cache

	JWTSecret   string
	POSUser     string
	POSPassword string

	GeminiAPIKey string
	GeminiModel  string

	// AllowOversell permits checkout to drive stock negative instead of
	// rejecting the sale.
	AllowOversell bool
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		StoreDriver:   getenv("STORE_DRIVER", "postgres"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBName:        getenv("DB_NAME", "royaltextiles"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		POSUser:       getenv("POS_USER", "admin"),
		POSPassword:   getenv("POS_PASSWORD", "admin"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		AllowOversell: boolenv("POS_ALLOW_OVERSELL", false),
	}
}

// DSN builds the Postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string, def bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}
