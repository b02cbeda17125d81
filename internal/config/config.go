// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend identifiers
const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

// Weak fallback credentials used when the environment does not provide real
// ones. They match the defaults the service has always shipped with and are
// documented rather than hardened; override both in any real deployment.
const (
	DefaultSessionSecret = "super-secret-key-change-me"
	DefaultAdminPassword = "@dmin123"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Session  SessionConfig
	Admin    AdminConfig
	Storage  StorageConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig holds admin session token settings
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// AdminConfig holds the admin gate credential
type AdminConfig struct {
	Password string
}

// StorageConfig holds file storage settings
type StorageConfig struct {
	Backend       string
	BasePath      string
	S3Bucket      string
	S3KeyPrefix   string
	MaxUploadSize int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Session configuration
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = DefaultSessionSecret
	}
	cfg.Session.Secret = sessionSecret

	sessionTTLStr := os.Getenv("SESSION_TTL")
	if sessionTTLStr == "" {
		sessionTTLStr = "24h" // default lifetime
	}
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.Session.TTL = sessionTTL

	// Admin gate configuration
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	cfg.Admin.Password = adminPassword

	// Storage configuration
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = StorageBackendLocal // default backend
	}
	if backend != StorageBackendLocal && backend != StorageBackendS3 {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: %q", backend)
	}
	cfg.Storage.Backend = backend

	basePath := os.Getenv("STORAGE_PATH")
	if basePath == "" {
		basePath = "uploads" // default directory
	}
	cfg.Storage.BasePath = basePath

	cfg.Storage.S3Bucket = os.Getenv("S3_BUCKET")
	if backend == StorageBackendS3 && cfg.Storage.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND is s3")
	}
	cfg.Storage.S3KeyPrefix = os.Getenv("S3_KEY_PREFIX") // optional

	maxUploadStr := os.Getenv("MAX_UPLOAD_SIZE_MB")
	if maxUploadStr == "" {
		maxUploadStr = "500" // 500 MiB ceiling
	}
	maxUploadMB, err := strconv.Atoi(maxUploadStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}
	if maxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	cfg.Storage.MaxUploadSize = int64(maxUploadMB) * 1024 * 1024

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}
