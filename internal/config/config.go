package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultHenrikBaseURL = "https://api.henrikdev.xyz/valorant"

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream
	HenrikAPIKey    string
	HenrikBaseURL   string
	ProxyURL        string
	UpstreamTimeout time.Duration
	MatchPageSize   int

	// Cache (optional)
	RedisURL            string
	CacheTTLAccount     time.Duration
	CacheTTLMatches     time.Duration
	CacheTTLMMR         time.Duration
	CacheTTLLeaderboard time.Duration

	// Leaderboard warmer
	WorkerCount  int
	QueueSize    int
	WarmInterval time.Duration

	// Rate limiting
	MaxConcurrentRequests int
}

// Load loads configuration from environment variables.
// It returns an error if the gateway cannot reach the upstream or a value is out of range.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		HenrikAPIKey:    os.Getenv("HENRIK_API_KEY"),
		HenrikBaseURL:   strings.TrimRight(getEnv("HENRIK_BASE_URL", DefaultHenrikBaseURL), "/"),
		ProxyURL:        os.Getenv("PROXY_URL"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		MatchPageSize:   getEnvInt("MATCH_PAGE_SIZE", 5),

		RedisURL:            os.Getenv("REDIS_URL"),
		CacheTTLAccount:     getEnvDuration("CACHE_TTL_ACCOUNT", time.Hour),
		CacheTTLMatches:     getEnvDuration("CACHE_TTL_MATCHES", 2*time.Minute),
		CacheTTLMMR:         getEnvDuration("CACHE_TTL_MMR", 5*time.Minute),
		CacheTTLLeaderboard: getEnvDuration("CACHE_TTL_LEADERBOARD", 10*time.Minute),

		WorkerCount:  getEnvInt("WORKER_COUNT", 2),
		QueueSize:    getEnvInt("QUEUE_SIZE", 32),
		WarmInterval: getEnvDuration("WARM_INTERVAL", 10*time.Minute),

		MaxConcurrentRequests: getEnvInt("MAX_CONCURRENT_REQUESTS", 100),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that the gateway has a way to authenticate.
func (c *Config) Validate() error {
	if c.HenrikAPIKey == "" && c.ProxyURL == "" {
		return errors.New("missing required environment variable: HENRIK_API_KEY or PROXY_URL")
	}
	if c.MatchPageSize < 1 || c.MatchPageSize > 100 {
		return fmt.Errorf("MATCH_PAGE_SIZE must be between 1 and 100, got %d", c.MatchPageSize)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be positive, got %d", c.WorkerCount)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("QUEUE_SIZE must be positive, got %d", c.QueueSize)
	}
	return nil
}

// UseProxy reports whether upstream calls go through the key-injecting proxy.
// A local key always wins.
func (c *Config) UseProxy() bool {
	return c.HenrikAPIKey == "" && c.ProxyURL != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
