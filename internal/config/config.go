package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPHost    string
	HTTPPort    string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig throttles POST /recommend per client IP: each IP gets its own bucket
// of Burst tokens refilled at RPS. RPS <= 0 disables the limiter.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

var errInvalidEnv = errors.New("invalid environment variables")

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	var invalid []string

	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg := Config{}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "career-advisor"),
		Environment: opt("APP_ENV", "development"),
		HTTPHost:    opt("HTTP_HOST", "0.0.0.0"),
		HTTPPort:    opt("HTTP_PORT", "5000"),
	}

	cfg.Log = LogConfig{
		JSON:  optBool("LOG_JSON", false),
		Debug: optBool("LOG_DEBUG", false),
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(opt("CORS_ALLOWED_ORIGINS", "*")),
	}

	cfg.RateLimit = RateLimitConfig{
		RPS:   optFloat("RECOMMEND_RATE_LIMIT_RPS", 0),
		Burst: optInt("RECOMMEND_RATE_LIMIT_BURST", 1),
	}

	cfg.Redis = RedisConfig{
		Enabled:  optBool("REDIS_ENABLED", false),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       optInt("REDIS_DB", 0),
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
