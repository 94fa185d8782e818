package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DBPath       string
	Port         string
	UploadDir    string
	JWTSecret    string
	SeedDemoData bool
}

// ConfigInstance is the global configuration instance
var ConfigInstance *Config

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBPath:       os.Getenv("DB_PATH"),
		Port:         os.Getenv("PORT"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	if config.DBPath == "" {
		config.DBPath = "madrasati.db"
	}

	if config.UploadDir == "" {
		config.UploadDir = "uploads"
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}
