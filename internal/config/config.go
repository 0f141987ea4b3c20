// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session registry backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds every setting the server reads at startup
type Config struct {
	Addr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SessionStore is "memory" or "redis"
	SessionStore string

	// DiscordWebhookURL is optional; duel summaries are not posted without it
	DiscordWebhookURL string

	RollDelay     time.Duration
	SweepInterval time.Duration
	SessionMaxAge time.Duration

	// AllowedOrigins restricts websocket upgrades, empty allows any origin
	AllowedOrigins []string
}

// Load reads a .env file if one exists, then the environment
func Load() (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only
func FromEnv() (*Config, error) {
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	rollDelayMS, err := getInt("ROLL_DELAY_MS", 1500)
	if err != nil {
		return nil, err
	}
	sweepSeconds, err := getInt("SWEEP_INTERVAL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	maxAgeSeconds, err := getInt("SESSION_MAX_AGE_SECONDS", 1800)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:              getEnv("ADDR", ":8080"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           redisDB,
		SessionStore:      getEnv("SESSION_STORE", SessionStoreMemory),
		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
		RollDelay:         time.Duration(rollDelayMS) * time.Millisecond,
		SweepInterval:     time.Duration(sweepSeconds) * time.Second,
		SessionMaxAge:     time.Duration(maxAgeSeconds) * time.Second,
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "")),
	}

	if cfg.SessionStore != SessionStoreMemory && cfg.SessionStore != SessionStoreRedis {
		return nil, fmt.Errorf("SESSION_STORE must be %q or %q", SessionStoreMemory, SessionStoreRedis)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s cannot be negative", key)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
