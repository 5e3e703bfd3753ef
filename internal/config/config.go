package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Remote    RemoteConfig    `json:"remote"`
	Cache     CacheConfig     `json:"cache"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Refresh   RefreshConfig   `json:"refresh"`
	Breaker   BreakerConfig   `json:"breaker"`
}

type ServerConfig struct {
	Host           string        `json:"host"`
	Port           string        `json:"port"`
	ReadTimeout    time.Duration `json:"read_timeout"`
	WriteTimeout   time.Duration `json:"write_timeout"`
	IdleTimeout    time.Duration `json:"idle_timeout"`
	Environment    string        `json:"environment"`
	AllowedOrigins []string      `json:"allowed_origins"`
}

// RemoteConfig points at the REST backend the gateway wraps. A zero
// Timeout leaves requests to the platform default, matching the
// original no-client-side-timeout behavior.
type RemoteConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

// CacheConfig selects the fallback store backend: file, sqlite,
// redis, or memory.
type CacheConfig struct {
	Backend    string `json:"backend"`
	Dir        string `json:"dir"`
	SQLitePath string `json:"sqlite_path"`

	RedisAddr     string        `json:"redis_addr"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisPoolSize int           `json:"redis_pool_size"`
	RedisTimeout  time.Duration `json:"redis_timeout"`
}

type AuthConfig struct {
	Enabled   bool   `json:"enabled"`
	JWTSecret string `json:"jwt_secret"`
}

type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	RequestsPerMin  int           `json:"requests_per_minute"`
	BurstSize       int           `json:"burst_size"`
	CleanupInterval time.Duration `json:"cleanup_interval"`
}

type RefreshConfig struct {
	Enabled  bool          `json:"enabled"`
	Interval time.Duration `json:"interval"`
}

type BreakerConfig struct {
	MaxFailures      int           `json:"max_failures"`
	Cooldown         time.Duration `json:"cooldown"`
	HalfOpenMaxCalls int           `json:"half_open_max_calls"`
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:           getEnv("HOST", "localhost"),
			Port:           getEnv("PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
			Environment:    getEnv("ENVIRONMENT", "development"),
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", nil),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_BASE_URL", "http://localhost:9000/api/v1"),
			Timeout: getEnvAsDuration("REMOTE_TIMEOUT", 0),
		},
		Cache: CacheConfig{
			Backend:       getEnv("CACHE_BACKEND", "file"),
			Dir:           getEnv("CACHE_DIR", "./data"),
			SQLitePath:    getEnv("CACHE_SQLITE_PATH", "./data/flowboard.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			RedisPoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),
			RedisTimeout:  getEnvAsDuration("REDIS_TIMEOUT", 3*time.Second),
		},
		Auth: AuthConfig{
			Enabled:   getEnvAsBool("AUTH_ENABLED", false),
			JWTSecret: getEnv("JWT_SECRET", "dev-secret"),
		},
		RateLimit: RateLimitConfig{
			Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMin:  getEnvAsInt("RATE_LIMIT_RPM", 300),
			BurstSize:       getEnvAsInt("RATE_LIMIT_BURST", 30),
			CleanupInterval: getEnvAsDuration("RATE_LIMIT_CLEANUP", 10*time.Minute),
		},
		Refresh: RefreshConfig{
			Enabled:  getEnvAsBool("REFRESH_ENABLED", false),
			Interval: getEnvAsDuration("REFRESH_INTERVAL", 5*time.Minute),
		},
		Breaker: BreakerConfig{
			MaxFailures:      getEnvAsInt("BREAKER_MAX_FAILURES", 5),
			Cooldown:         getEnvAsDuration("BREAKER_COOLDOWN", 30*time.Second),
			HalfOpenMaxCalls: getEnvAsInt("BREAKER_HALF_OPEN_CALLS", 2),
		},
	}

	switch config.Cache.Backend {
	case "file", "sqlite", "redis", "memory":
	default:
		return nil, fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
	}

	if config.IsProduction() {
		if config.Auth.Enabled && config.Auth.JWTSecret == "dev-secret" {
			return nil, fmt.Errorf("JWT secret must be set in production")
		}
		if os.Getenv("REMOTE_BASE_URL") == "" {
			return nil, fmt.Errorf("REMOTE_BASE_URL is required in production")
		}
	}

	return config, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
