package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether artwork archiving has enough configuration to run.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type Config struct {
	Port           string
	APIBaseURL     string
	AgentURL       string
	RequestTimeout time.Duration
	AgentTimeout   time.Duration
	PostgresURI    string
	RedisURI       string
	SnapshotTTL    time.Duration
	FrontendURL    string
	R2             R2
	SecretKey      string
	CookieName     string
	ViewerTimezone string
	LogLevel       string
	LogFormat      string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("AGENT_URL", "http://localhost:8000")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	// bulk generation and the research agent call an LLM upstream
	v.SetDefault("AGENT_TIMEOUT", "3m")
	v.SetDefault("REDIS_URI", "localhost:6379")
	v.SetDefault("SNAPSHOT_TTL", "6h")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("COOKIE_NAME", "brand_engine_session")
	v.SetDefault("VIEWER_TIMEZONE", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		Port:           v.GetString("PORT"),
		APIBaseURL:     strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		AgentURL:       strings.TrimRight(v.GetString("AGENT_URL"), "/"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		AgentTimeout:   v.GetDuration("AGENT_TIMEOUT"),
		PostgresURI:    v.GetString("POSTGRES_URI"),
		RedisURI:       v.GetString("REDIS_URI"),
		SnapshotTTL:    v.GetDuration("SNAPSHOT_TTL"),
		FrontendURL:    v.GetString("FRONTEND_URL"),
		R2: R2{
			AccountID:  v.GetString("R2_ACCOUNT_ID"),
			AccessKey:  v.GetString("R2_ACCESS_KEY"),
			SecretKey:  v.GetString("R2_SECRET_KEY"),
			BucketName: v.GetString("R2_BUCKET_NAME"),
			PublicURL:  strings.TrimRight(v.GetString("R2_PUBLIC_URL"), "/"),
		},
		SecretKey:      v.GetString("SECRET_KEY"),
		CookieName:     v.GetString("COOKIE_NAME"),
		ViewerTimezone: v.GetString("VIEWER_TIMEZONE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required to sign session cookies")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if _, err := time.LoadLocation(c.ViewerTimezone); err != nil {
		return fmt.Errorf("invalid VIEWER_TIMEZONE %q: %w", c.ViewerTimezone, err)
	}
	// credentialed CORS cannot answer with a wildcard origin
	if strings.Contains(c.FrontendURL, "*") {
		return fmt.Errorf("FRONTEND_URL must list explicit origins, got %q", c.FrontendURL)
	}
	if c.RequestTimeout <= 0 || c.AgentTimeout <= 0 {
		return fmt.Errorf("request timeouts must be positive")
	}
	return nil
}
