package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Sienge    SiengeConfig
	Sync      SyncConfig
	Retention RetentionConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings for the run lease store
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
	// RateLimitRequests per RateLimitWindow per client IP; 0 disables limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// SiengeConfig holds connection settings for the Sienge bulk-data API
type SiengeConfig struct {
	// Subdomain is the customer slug in the bulk-data URL,
	// https://api.sienge.com.br/{subdomain}/public/api/bulk-data/v1
	Subdomain string
	Username  string
	Password  string
	// BaseURL overrides the derived URL entirely (used in tests)
	BaseURL string
	Timeout time.Duration
}

// APIBaseURL returns the effective bulk-data base URL
func (s *SiengeConfig) APIBaseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("https://api.sienge.com.br/%s/public/api/bulk-data/v1", s.Subdomain)
}

// SyncConfig holds sync window planning and orchestration settings
type SyncConfig struct {
	// BackfillYears is the lookback of the first-ever historical run
	BackfillYears int
	// OverlapDays is the trailing slice re-fetched on every daily run
	OverlapDays int
	// SelectionType is the Sienge window semantics flag ("I" = issued/modified)
	SelectionType string
	// CorrectionIndexerID is passed through on outcome fetches
	CorrectionIndexerID int
	// StaleRunTimeout is how old a running sync_control row must be before a
	// new run may reclaim it
	StaleRunTimeout time.Duration
	// LeaseTTL bounds how long a run may hold the per-data-type lease
	LeaseTTL time.Duration
	// DailyEnabled turns on the in-process daily trigger in the server
	DailyEnabled bool
	DailyHour    int
	DailyMinute  int
}

// RetentionConfig holds the due_date purge settings
type RetentionConfig struct {
	Months int
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SIENGE_ prefix (e.g. SIENGE_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SIENGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
		},
		Sienge: SiengeConfig{
			Subdomain: v.GetString("sienge.subdomain"),
			Username:  v.GetString("sienge.username"),
			Password:  v.GetString("sienge.password"),
			BaseURL:   v.GetString("sienge.base_url"),
			Timeout:   v.GetDuration("sienge.timeout"),
		},
		Sync: SyncConfig{
			BackfillYears:       v.GetInt("sync.backfill_years"),
			OverlapDays:         v.GetInt("sync.overlap_days"),
			SelectionType:       v.GetString("sync.selection_type"),
			CorrectionIndexerID: v.GetInt("sync.correction_indexer_id"),
			StaleRunTimeout:     v.GetDuration("sync.stale_run_timeout"),
			LeaseTTL:            v.GetDuration("sync.lease_ttl"),
			DailyEnabled:        v.GetBool("sync.daily_enabled"),
			DailyHour:           v.GetInt("sync.daily_hour"),
			DailyMinute:         v.GetInt("sync.daily_minute"),
		},
		Retention: RetentionConfig{
			Months: v.GetInt("retention.months"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "sienge-financial-sync"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8000"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "sienge_app"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "sienge_data"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	if cfg.Sienge.Timeout == 0 {
		cfg.Sienge.Timeout = 2 * time.Minute
	}
	if cfg.Sync.BackfillYears == 0 {
		cfg.Sync.BackfillYears = 5
	}
	if cfg.Sync.OverlapDays == 0 {
		cfg.Sync.OverlapDays = 7
	}
	if cfg.Sync.SelectionType == "" {
		cfg.Sync.SelectionType = "I"
	}
	if cfg.Sync.StaleRunTimeout == 0 {
		cfg.Sync.StaleRunTimeout = 6 * time.Hour
	}
	if cfg.Sync.LeaseTTL == 0 {
		cfg.Sync.LeaseTTL = 4 * time.Hour
	}
	if cfg.Sync.DailyHour == 0 && cfg.Sync.DailyMinute == 0 {
		cfg.Sync.DailyHour = 5 // 5am, after Sienge's nightly consolidation
	}
	if cfg.Retention.Months == 0 {
		cfg.Retention.Months = 12
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.HTTP.RateLimitRequests < 0 {
		return fmt.Errorf("http.rate_limit_requests cannot be negative")
	}
	if c.Sync.BackfillYears < 0 {
		return fmt.Errorf("sync.backfill_years cannot be negative")
	}
	if c.Sync.OverlapDays < 0 {
		return fmt.Errorf("sync.overlap_days cannot be negative")
	}
	if c.Sync.DailyHour < 0 || c.Sync.DailyHour > 23 {
		return fmt.Errorf("sync.daily_hour must be between 0 and 23")
	}
	if c.Sync.DailyMinute < 0 || c.Sync.DailyMinute > 59 {
		return fmt.Errorf("sync.daily_minute must be between 0 and 59")
	}
	if c.Retention.Months <= 0 {
		return fmt.Errorf("retention.months must be positive")
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Sienge.BaseURL == "" && c.Sienge.Subdomain == "" {
			return fmt.Errorf("sienge.subdomain is required in production")
		}
		if c.Sienge.Username == "" || c.Sienge.Password == "" {
			return fmt.Errorf("sienge credentials are required in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
