package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration, read from the environment
type Config struct {
	HTTPPort string

	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	JWTSecret string
	TokenTTL  time.Duration

	CORSAllowedOrigins string
	CORSAllowedMethods string
	CORSAllowedHeaders string

	// CrisisResource overrides the crisis support line appended to
	// self-harm recommendations, for regional deployments.
	CrisisResource string

	// TrendCacheTTL bounds how long a computed trend report is served
	// from cache before recomputation.
	TrendCacheTTL time.Duration
}

// Load reads configuration from the environment with development defaults
func Load() *Config {
	return &Config{
		HTTPPort: getEnvOrDefault("PORT", "8080"),

		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "mindtrack"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),

		JWTSecret: getEnvOrDefault("JWT_SECRET", "mindtrack-secret-key-change-in-production"),
		TokenTTL:  time.Duration(getEnvIntOrDefault("TOKEN_TTL_MINUTES", 30)) * time.Minute,

		CORSAllowedOrigins: getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),
		CORSAllowedMethods: getEnvOrDefault("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
		CORSAllowedHeaders: getEnvOrDefault("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),

		CrisisResource: os.Getenv("CRISIS_RESOURCE"),

		TrendCacheTTL: time.Duration(getEnvIntOrDefault("TREND_CACHE_TTL_SECONDS", 300)) * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
