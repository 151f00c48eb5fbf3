package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, loaded once at startup.
type Config struct {
	AppPort    string // HTTP listen port
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	JWTSecret  string // JWT signing key
	UploadDir  string // Root folder for uploaded files
	BaseURL    string // Public base URL used when building upload links
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables.
// A local .env file is honored if present but never required.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		AppPort:    getEnv("APP_PORT", "5000"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "b2b_footwear_platform"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-only-secret-change-me"),
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:5000"),
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL connection string for the configured database.
// parseTime is required so DATE/DATETIME columns scan into time.Time.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
