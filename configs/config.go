package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether every credential needed for uploads is present.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != "" && r.PublicURL != ""
}

type Config struct {
	AppEnv           string
	Port             string
	RedisURI         string
	FrontendURL      string
	Location         *time.Location
	QueueConcurrency int
	SweepSchedule    string
	SweepWindow      time.Duration
	PublisherKey     string
	SentryDSN        string
	LogLevel         string
	LogFormat        string
	LogFile          string
	R2               R2
}

func LoadConfig() (*Config, error) {
	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	concurrency, err := strconv.Atoi(getEnv("QUEUE_CONCURRENCY", "10"))
	if err != nil || concurrency <= 0 {
		return nil, fmt.Errorf("invalid QUEUE_CONCURRENCY: %q", os.Getenv("QUEUE_CONCURRENCY"))
	}

	window, err := time.ParseDuration(getEnv("SWEEP_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_WINDOW: %w", err)
	}

	return &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		RedisURI:         getEnv("REDIS_URI", ""),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		Location:         loc,
		QueueConcurrency: concurrency,
		SweepSchedule:    getEnv("SWEEP_SCHEDULE", "@every 00h10m00s"),
		SweepWindow:      window,
		PublisherKey:     getEnv("PUBLISHER_KEY", ""),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		LogFile:          getEnv("LOG_FILE", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
