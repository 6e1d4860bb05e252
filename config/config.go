package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/configparser"
	"github.com/Temutjin2k/lapla/pkg/logger"
)

// Flags
var (
	modeFlag = flag.String("mode", string(types.DashboardService), "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidSeasons  = errors.New("first season must not be after default season")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Server    ServerConfig
		Provider  ProviderConfig
		Cache     CacheConfig
		Database  DatabaseConfig
		LLM       LLMConfig
		Dashboard DashboardConfig
		Log       LogConfig
	}

	ServerConfig struct {
		Port         string        `env:"SERVER_PORT" default:"5000"`
		ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
		WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`
		IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"2m"`
	}

	ProviderConfig struct {
		BaseURL           string        `env:"PROVIDER_BASE_URL" default:"https://api.openf1.org/v1"`
		Timeout           time.Duration `env:"PROVIDER_TIMEOUT" default:"20s"`
		RequestsPerSecond float64       `env:"PROVIDER_REQUESTS_PER_SECOND" default:"3"`
		Burst             int           `env:"PROVIDER_BURST" default:"3"`
	}

	CacheConfig struct {
		TTL             time.Duration `env:"CACHE_TTL" default:"300s"`
		MaxEntries      int           `env:"CACHE_MAX_ENTRIES" default:"1024"`
		PurgeInterval   time.Duration `env:"CACHE_PURGE_INTERVAL" default:"10m"`
		PostgresEnabled bool          `env:"CACHE_POSTGRES_ENABLED" default:"false"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"lapla"`
		Password string `env:"DATABASE_PASSWORD" default:"lapla"`
		Database string `env:"DATABASE_DATABASE" default:"lapla"`

		MaxConns int32 `env:"DATABASE_MAXCONNS" default:"10"`
	}

	LLMConfig struct {
		APIKey            string        `env:"LLM_API_KEY"`
		BaseURL           string        `env:"LLM_BASE_URL" default:"https://api.openai.com/v1"`
		Model             string        `env:"LLM_MODEL" default:"gpt-4o-mini"`
		Timeout           time.Duration `env:"LLM_TIMEOUT" default:"30s"`
		RequestsPerMinute int           `env:"LLM_REQUESTS_PER_MINUTE" default:"20"`
		Temperature       float64       `env:"LLM_TEMPERATURE" default:"0.4"`
	}

	DashboardConfig struct {
		FirstSeason    int     `env:"DASHBOARD_FIRST_SEASON" default:"2018"`
		DefaultSeason  int     `env:"DASHBOARD_DEFAULT_SEASON" default:"2025"`
		SampleLapCount int     `env:"DASHBOARD_SAMPLE_LAP_COUNT" default:"30"`
		ReplaySpeedUp  float64 `env:"DASHBOARD_REPLAY_SPEED_UP" default:"1"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c DatabaseConfig) GetMaxConns() int32 {
	return c.MaxConns
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

func (c *Config) validate() error {
	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.Dashboard.FirstSeason > c.Dashboard.DefaultSeason {
		return ErrInvalidSeasons
	}
	return nil
}
