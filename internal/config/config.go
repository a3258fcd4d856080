package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultPort                    = 9100
	defaultGrungaApiURL            = "http://127.0.0.1:5000/api"
	defaultGrungaApiTimeoutSeconds = 10
	defaultDemoUser                = "demo1"
	defaultSessionTTLHours         = 24 * 7
	defaultUserCacheTTLSeconds     = 5 * 60
	defaultHealthCacheTTLSeconds   = 5
	defaultMutationsPerMin         = 60
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// upstream grunga api
	GrungaApiURL            string `toml:"grunga_api_url"`
	GrungaApiTimeoutSeconds int    `toml:"grunga_api_timeout_seconds"`
	UserCacheTTLSeconds     int    `toml:"user_cache_ttl_seconds"`
	HealthCacheTTLSeconds   int    `toml:"health_cache_ttl_seconds"`
	// redis (demo user sessions, rate limiting)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// demo identity
	DefaultDemoUser string   `toml:"default_demo_user"`
	DemoUsers       []string `toml:"demo_users"`
	SessionTTLHours int      `toml:"session_ttl_hours"`
	// http
	MutationsRateLimitPerMin int      `toml:"mutations_rate_limit_per_min"`
	AllowedOrigins           []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.GrungaApiURL == "" {
		c.GrungaApiURL = defaultGrungaApiURL
	}
	c.GrungaApiURL = strings.TrimRight(c.GrungaApiURL, "/")
	if c.GrungaApiTimeoutSeconds <= 0 {
		c.GrungaApiTimeoutSeconds = defaultGrungaApiTimeoutSeconds
	}
	if c.UserCacheTTLSeconds <= 0 {
		c.UserCacheTTLSeconds = defaultUserCacheTTLSeconds
	}
	if c.HealthCacheTTLSeconds <= 0 {
		c.HealthCacheTTLSeconds = defaultHealthCacheTTLSeconds
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "9101"
	}
	if len(c.DemoUsers) == 0 {
		c.DemoUsers = []string{"demo1", "demo2"}
	}
	if c.DefaultDemoUser == "" {
		c.DefaultDemoUser = defaultDemoUser
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = defaultSessionTTLHours
	}
	if c.MutationsRateLimitPerMin <= 0 {
		c.MutationsRateLimitPerMin = defaultMutationsPerMin
	}
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
