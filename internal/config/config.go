package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPass          string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	SessionTTLHours int
	Port            string
	Env             string
	UploadDir       string
	QRDir           string
	MaxUploadSize   int64
	LogLevel        string
}

func NewConfigFromEnv() (*Config, error) {
	maxUploadSize, _ := strconv.ParseInt(getenv("MAX_UPLOAD_SIZE", "10485760"), 10, 64)
	sessionTTL, _ := strconv.Atoi(getenv("SESSION_TTL_HOURS", "24"))

	cfg := &Config{
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "5432"),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPass:          getenv("DB_PASSWORD", "postgres"),
		DBName:          getenv("DB_NAME", "eventadmin"),
		DBSSLMode:       getenv("DB_SSLMODE", "disable"),
		JWTSecret:       getenv("JWT_SECRET", ""),
		SessionTTLHours: sessionTTL,
		Port:            getenv("PORT", "3000"),
		Env:             getenv("ENV", "development"),
		UploadDir:       getenv("UPLOAD_DIR", "./uploads/images"),
		QRDir:           getenv("QR_DIR", "./uploads/qrcodes"),
		MaxUploadSize:   maxUploadSize,
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 24
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
