package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Redis Configuration (session persistence)
	RedisURL      string
	RedisPassword string
	// Session Configuration
	SessionJWTSecret string
	SessionTTL       time.Duration
	// Document Rendering
	ChromePath string // optional explicit Chrome/Chromium binary
	// Mock upstream latencies (zero disables)
	MockAuthLatency   time.Duration
	MockSkillLatency  time.Duration
	MockSalaryLatency time.Duration
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Trailing slash would break the CORS origin match.
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		SessionJWTSecret: getEnv("SESSION_JWT_SECRET", ""),
		SessionTTL:       getEnvDuration("SESSION_TTL", 24*time.Hour),
		ChromePath:       getEnv("CHROME_PATH", ""),
		// The mock upstreams respond on a delay to mimic real providers.
		MockAuthLatency:   getEnvDuration("MOCK_AUTH_LATENCY", time.Second),
		MockSkillLatency:  getEnvDuration("MOCK_SKILL_LATENCY", 700*time.Millisecond),
		MockSalaryLatency: getEnvDuration("MOCK_SALARY_LATENCY", 500*time.Millisecond),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.SessionJWTSecret == "" {
		log.Println("WARNING: SESSION_JWT_SECRET is missing. Using an insecure development secret.")
		cfg.SessionJWTSecret = "dev-insecure-session-secret"
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Session persistence will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration returns a duration environment variable (Go syntax, e.g.
// "700ms") or fallback if not set/invalid
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
