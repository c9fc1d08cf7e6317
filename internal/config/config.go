package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI               string
	Database          string
	MaxPoolSize       int
	MinPoolSize       int
	ConnectTimeoutSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base used to build links returned to clients,
	// e.g. https://cdn.example.com. Defaults to the endpoint.
	PublicURL string
}

// AuthConfig holds token and cookie settings.
type AuthConfig struct {
	// TokenKey is a 64 character hex string (32 bytes) used for PASETO v4.local.
	TokenKey     string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	SecureCookie bool
}

// RateLimitConfig throttles the unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Environment string
	Timezone    string
	CORSOrigins string
	BodyLimitMB int
	Log         LogConfig
	Mongo       MongoConfig
	MinIO       MinIOConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	endpoint := getEnv("MINIO_ENDPOINT", "")
	useSSL := getEnvBool("MINIO_USE_SSL", false)

	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8000"),
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("APP_ENV", "development"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		CORSOrigins: getEnv("CORS_ORIGIN", "*"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 200),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Mongo: MongoConfig{
			URI:               getEnv("MONGODB_URI", ""),
			Database:          getEnv("MONGODB_DATABASE", "vidtube"),
			MaxPoolSize:       getEnvInt("MONGODB_MAX_POOL_SIZE", 20),
			MinPoolSize:       getEnvInt("MONGODB_MIN_POOL_SIZE", 0),
			ConnectTimeoutSec: getEnvInt("MONGODB_CONNECT_TIMEOUT_SEC", 10),
		},
		MinIO: MinIOConfig{
			Endpoint:  endpoint,
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    useSSL,
			PublicURL: getEnv("MINIO_PUBLIC_URL", defaultPublicURL(endpoint, useSSL)),
		},
		Auth: AuthConfig{
			TokenKey:     getEnv("TOKEN_KEY", ""),
			AccessTTL:    getEnvDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour),
			RefreshTTL:   getEnvDuration("REFRESH_TOKEN_EXPIRY", 10*24*time.Hour),
			SecureCookie: getEnvBool("SECURE_COOKIES", true),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("AUTH_RATE_LIMIT_RPS", 1),
			Burst: getEnvInt("AUTH_RATE_LIMIT_BURST", 10),
		},
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func defaultPublicURL(endpoint string, useSSL bool) string {
	if endpoint == "" {
		return ""
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("15m", "240h") or a bare
// number of days ("10d") which is how expiries are usually written in .env files.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if strings.HasSuffix(v, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(v, "d"))
		if err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
