package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// API
	APIPrefix string

	// MongoDB
	MongoURI     string
	DatabaseName string

	// JWT
	SecretKey      string
	Algorithm      string
	AccessTokenTTL time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated; empty means allow all

	// Debug metrics (expvar)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "task-management-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		APIPrefix: getenv("API_V1_PREFIX", "/api/v1"),

		MongoURI:     getenv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName: getenv("DATABASE_NAME", "task_management_db"),

		SecretKey:      getenv("SECRET_KEY", "supersecretkey"),
		Algorithm:      getenv("ALGORITHM", "HS256"),
		AccessTokenTTL: time.Duration(getint("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
