package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	BackendBase string
	BackendRPS  int
	Workers     int
	PerPage     int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		BackendBase: backendBase(),
		BackendRPS:  atoi("BACKEND_RPS", 10),
		Workers:     atoi("PREWARM_WORKERS", 4),
		PerPage:     atoi("TESTIMONIALS_PER_PAGE", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	return c
}

// backendBase resolves the backend URL. CAMPING_API_URL is canonical;
// CAMPING_API_BASE_URL is kept for backward compatibility with older deploy
// configs. The localhost default only makes sense in development.
func backendBase() string {
	if v := os.Getenv("CAMPING_API_URL"); v != "" {
		return v
	}
	if v := os.Getenv("CAMPING_API_BASE_URL"); v != "" {
		return v
	}
	log.Warn().Msg("CAMPING_API_URL not set, using localhost default")
	return "http://localhost:5000/api"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
