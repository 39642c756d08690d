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
	RemoteDriver string
	RemoteURL    string
	RemoteKey    string
	RedisURL     string
	StateKey     string
	StateTTL     time.Duration
	ServerPort   string
	GinMode      string
	CORSOrigins  []string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	cfg := &Config{
		RemoteDriver: getEnv("REMOTE_DB_DRIVER", "postgres"),
		RemoteURL:    os.Getenv("REMOTE_DB_URL"),
		RemoteKey:    os.Getenv("REMOTE_DB_KEY"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		StateKey:     getEnv("STATE_KEY", "brew-co-storage"),
		StateTTL:     getEnvAsDuration("STATE_TTL", 30*24*time.Hour),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		CORSOrigins:  getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173"}),
	}

	if !cfg.RemoteConfigured() {
		log.Println("Warning: REMOTE_DB_URL or REMOTE_DB_KEY not set, using mock data mode")
	}
	return cfg
}

// RemoteConfigured reports whether both remote connection parameters are set.
func (c *Config) RemoteConfigured() bool {
	return c.RemoteURL != "" && c.RemoteKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("12h") or plain seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if seconds := getEnvAsInt(key, -1); seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
