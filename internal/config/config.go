package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// Global singleton, set by Load.
var globalConfig *Config

// Config holds all environment backed configuration for the counselling API.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Auth
	JWTSecret []byte        `env:"JWT_SECRET,notEmpty"`
	Issuer    string        `env:"ISSUER" envDefault:"gradpath"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Reasoning engine (OpenAI-compatible chat completion endpoint)
	ReasoningBaseURL     string        `env:"REASONING_BASE_URL,notEmpty"`
	ReasoningAPIKey      string        `env:"REASONING_API_KEY"`
	ReasoningModel       string        `env:"REASONING_MODEL" envDefault:"llama-3.1-8b-instant"`
	ReasoningTimeout     time.Duration `env:"REASONING_TIMEOUT" envDefault:"30s"`
	ReasoningMaxTokens   int           `env:"REASONING_MAX_TOKENS" envDefault:"1024"`
	ReasoningTemperature float32       `env:"REASONING_TEMPERATURE" envDefault:"0.3"`

	// Counselling
	CounsellingMinInterval time.Duration `env:"COUNSELLING_MIN_INTERVAL" envDefault:"2s"`
	ConversationRetention  time.Duration `env:"CONVERSATION_RETENTION" envDefault:"2160h"`
	RetentionJobEnabled    bool          `env:"RETENTION_JOB_ENABLED" envDefault:"true"`

	// University catalog seed
	UniversityCatalogFile string `env:"UNIVERSITY_CATALOG_FILE"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"counselling-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"gradpath"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate   bool `env:"AUTO_MIGRATE" envDefault:"true"`
	EnableSwagger bool `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.ReasoningBaseURL); err != nil {
		return nil, fmt.Errorf("invalid REASONING_BASE_URL: %w", err)
	}

	if cfg.CounsellingMinInterval <= 0 {
		return nil, fmt.Errorf("COUNSELLING_MIN_INTERVAL must be positive")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the config loaded by the last successful Load call.
func GetGlobal() *Config {
	return globalConfig
}
