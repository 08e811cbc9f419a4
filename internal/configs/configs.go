package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	RateLimit              int
	RedisEnabled           bool
	RedisAddr              string
	RedisTokenKey          string
	RedisChatChannel       string
	JWTSecret              string
	StickySweepSeconds     int
	AssistantConcurrency   int
	AssistantHistory       int
	OpenAIAPIKey           string
	OpenAIBaseURL          string
	OpenAIModel            string
	GoogleClientID         string
	GoogleClientSecret     string
	GoogleRedirectURL      string
	ShutdownTimeoutSeconds int
	LogLevel               string
	LogFormat              string
}

func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

func load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	ints := map[string]int{
		"RATE_LIMIT_PER_MINUTE":         120,
		"STICKY_SWEEP_INTERVAL_SECONDS": 60,
		"ASSISTANT_CONCURRENCY":         4,
		"ASSISTANT_HISTORY":             20,
		"SHUTDOWN_TIMEOUT_SECONDS":      20,
	}
	for key, def := range ints {
		v, err := getEnvAsInt(key, def)
		if err != nil {
			return Config{}, err
		}
		ints[key] = v
	}

	redisEnabled, err := getEnvAsBool("REDIS_ENABLED", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver:         strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabaseDSN:            getEnv("DATABASE_DSN", "workbase.db?_busy_timeout=5000&_txlock=immediate"),
		RateLimit:              ints["RATE_LIMIT_PER_MINUTE"],
		RedisEnabled:           redisEnabled,
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisTokenKey:          getEnv("REDIS_TOKEN_KEY", "workbase:assistant_tokens"),
		RedisChatChannel:       getEnv("REDIS_CHAT_CHANNEL", "workbase:chat"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		StickySweepSeconds:     ints["STICKY_SWEEP_INTERVAL_SECONDS"],
		AssistantConcurrency:   ints["ASSISTANT_CONCURRENCY"],
		AssistantHistory:       ints["ASSISTANT_HISTORY"],
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:          os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GoogleClientID:         os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:     os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:      os.Getenv("GOOGLE_REDIRECT_URL"),
		ShutdownTimeoutSeconds: ints["SHUTDOWN_TIMEOUT_SECONDS"],
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "console"),
	}

	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if len(cfg.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if cfg.StickySweepSeconds <= 0 {
		return fmt.Errorf("STICKY_SWEEP_INTERVAL_SECONDS must be greater than 0")
	}
	if cfg.AssistantConcurrency <= 0 {
		return fmt.Errorf("ASSISTANT_CONCURRENCY must be greater than 0")
	}
	if cfg.AssistantHistory <= 0 {
		return fmt.Errorf("ASSISTANT_HISTORY must be greater than 0")
	}
	return nil
}

// GoogleEnabled reports whether calendar sync credentials are present.
func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s", key)
		}
		return b, nil
	}
	return defaultVal, nil
}
