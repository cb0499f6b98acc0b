package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

type Config struct {
	ServerPort  int
	DatabaseURL string
	JWTSecret   string
	AccessTTL   time.Duration

	CacheTTL         time.Duration
	SettingsCacheTTL time.Duration

	MinIO MinIO
	SMTP  SMTP
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// Load reads configuration from the environment, with .env as a convenience
// for local development. DATABASE_URL may be empty: the service then runs in
// unconfigured mode where reads return empty results and writes are rejected.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		ServerPort:  getEnvInt("SERVER_PORT", 8080),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		AccessTTL:   getEnvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),

		CacheTTL:         getEnvDuration("CACHE_TTL", 5*time.Minute),
		SettingsCacheTTL: getEnvDuration("SETTINGS_CACHE_TTL", 10*time.Minute),

		MinIO: MinIO{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "images"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
		},

		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			NotifyTo: getEnv("INQUIRY_NOTIFY_EMAIL", ""),
		},
	}
}
