package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	MetricsAddr     string
	HTTPTimeout     time.Duration
	SettingsBackend string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	PlacesBase      string
	PlacesRPS       int
	CacheTTL        time.Duration
	FallbackDelay   time.Duration
	Breakpoint      int
	AutoPlay        time.Duration
}

func Load() Config { return LoadFile(envFile) }

// LoadFile reads the environment. Values from the dotenv file at path fill in
// keys that are not already set in the process environment.
func LoadFile(path string) Config {
	overlay(path)

	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		LogLevel:        env("LOG_LEVEL", ""),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		HTTPTimeout:     time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		SettingsBackend: env("SETTINGS_BACKEND", "memory"),
		MySQLDSN:        env("MYSQL_DSN", "root:root@tcp(localhost:3306)/reviews?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:       env("REDIS_ADDR", ""),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		PlacesBase:      env("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		PlacesRPS:       atoi("PLACES_RPS", 5),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		FallbackDelay:   time.Duration(atoi("FALLBACK_DELAY_MS", 1000)) * time.Millisecond,
		Breakpoint:      atoi("NARROW_BREAKPOINT_PX", 768),
		AutoPlay:        time.Duration(atoi("AUTOPLAY_SECONDS", 0)) * time.Second,
	}
	switch c.SettingsBackend {
	case "memory", "redis", "mysql":
	default:
		log.Warn().Str("backend", c.SettingsBackend).Msg("unknown SETTINGS_BACKEND, using memory")
		c.SettingsBackend = "memory"
	}
	if c.SettingsBackend == "redis" && c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	return c
}

func overlay(path string) {
	m, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, v := range m {
		if _, ok := os.LookupEnv(k); !ok {
			_ = os.Setenv(k, v)
		}
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
