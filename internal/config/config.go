package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Result store backends selectable through RESULT_STORE.
const (
	ResultStoreMemory = "memory"
	ResultStoreRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// ResultStore selects where scored results live: "memory" (default) or "redis".
	ResultStore string
	RedisURL    string
	// SeedFile overrides the embedded seed catalog when set.
	SeedFile       string
	LoginRateLimit int
	MaxBodyBytes   int64
	BcryptCost     int
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		ResultStore:    strings.ToLower(getEnv("RESULT_STORE", ResultStoreMemory)),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SeedFile:       getEnv("SEED_FILE", ""),
		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 30),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		BcryptCost:     getEnvInt("BCRYPT_COST", 6),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
