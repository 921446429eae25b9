package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds runtime configuration for the CLI, API server and TUI
type Settings struct {
	DatabasePath string
	CacheDir     string
	Port         int
	LogLevel     string
	LogFile      string
	RedisAddr    string // empty uses the in-process analysis cache
	DevMode      bool
}

// LoadSettings reads settings from the environment, loading a .env file
// from the working directory first when one exists
func LoadSettings() (*Settings, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".readyvault")

	s := &Settings{
		DatabasePath: getEnv("READYVAULT_DB_PATH", filepath.Join(dataDir, "readyvault.db")),
		CacheDir:     getEnv("READYVAULT_CACHE_DIR", filepath.Join(dataDir, "cache")),
		Port:         getEnvAsInt("READYVAULT_PORT", 8080),
		LogLevel:     getEnv("READYVAULT_LOG_LEVEL", "info"),
		LogFile:      getEnv("READYVAULT_LOG_FILE", ""),
		RedisAddr:    getEnv("READYVAULT_REDIS_ADDR", ""),
		DevMode:      getEnvAsBool("READYVAULT_DEV_MODE", false),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that required settings are present
func (s *Settings) Validate() error {
	if s.DatabasePath == "" {
		return fmt.Errorf("READYVAULT_DB_PATH is required")
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("READYVAULT_PORT must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
