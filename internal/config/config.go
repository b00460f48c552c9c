package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBreeds seeds the breeds table when BREEDS is not set.
var DefaultBreeds = []string{
	"Abyssinian",
	"Bengal",
	"British Shorthair",
	"Maine Coon",
	"Persian",
	"Ragdoll",
	"Scottish Fold",
	"Siamese",
	"Sphynx",
	"Mixed",
}

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string

	DatabasePath string
	UploadDir    string

	SessionSecret string
	SessionTTL    time.Duration

	RedisAddr string

	OtelEndpoint string
	OtelStdout   bool
	LogLevel     string

	Breeds []string
}

// Load reads configuration from the environment. A .env file is loaded first
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8080")),

		DatabasePath: getEnv("DATABASE_PATH", "./catmatch.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "./static/photos"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),

		OtelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelStdout:   getEnv("OTEL_STDOUT", "false") == "true",
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		Breeds: splitList(os.Getenv("BREEDS")),
	}

	var err error
	cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if len(cfg.Breeds) == 0 {
		cfg.Breeds = DefaultBreeds
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SESSION_SECRET must be set outside development")
		}
		cfg.SessionSecret = "dev-session-secret"
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
