package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	pkgconfig "github.com/wekeepgrowing/customer-dashboard/pkg/config"
)

// ServiceName is the config file name and env prefix (API_...).
const ServiceName = "api"

type Config struct {
	Service   ServiceConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type ServiceConfig struct {
	Name        string `validate:"required"`
	Environment string `validate:"required"`
	Version     string
}

type ServerConfig struct {
	HTTP HTTPConfig
}

type HTTPConfig struct {
	Host            string
	Port            int           `validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `validate:"gte=0"`
}

// Address returns host:port for the listener.
func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level       string `validate:"oneof=debug info warn error"`
	Format      string `validate:"oneof=json console"`
	Output      string `validate:"oneof=stdout stderr file"`
	FilePath    string `validate:"required_if=Output file"`
	Development bool
	// SQL enables per-query debug logging from gorm.
	SQL bool
}

type CORSConfig struct {
	AllowOrigins []string
}

type RateLimitConfig struct {
	Enabled   bool
	Rate      float64       `validate:"required_if=Enabled true,gte=0"`
	Burst     int           `validate:"gte=0"`
	ExpiresIn time.Duration `validate:"gte=0"`
}

// RedisConfig backs request statistics. Stats are disabled when Enabled is false.
type RedisConfig struct {
	Enabled  bool
	Host     string `validate:"required_if=Enabled true"`
	Port     int    `validate:"omitempty,min=1,max=65535"`
	Password string
	DB       int           `validate:"gte=0"`
	Prefix   string        `validate:"required_if=Enabled true"`
	TTL      time.Duration `validate:"gte=0"`
}

// Addr returns host:port for the redis client.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var defaults = map[string]interface{}{
	"service.name":                 "customer-dashboard-api",
	"service.environment":          "development",
	"server.http.host":             "",
	"server.http.port":             3000,
	"server.http.shutdown_timeout": "10s",
	"database.host":                "localhost",
	"database.port":                5432,
	"database.sslmode":             "disable",
	"database.max_open_conns":      10,
	"database.max_idle_conns":      5,
	"database.conn_max_lifetime":   "30m",
	"database.conn_max_idle_time":  "5m",
	"database.slow_threshold":      "200ms",
	"log.level":                    "info",
	"log.format":                   "json",
	"log.output":                   "stdout",
	"cors.allow_origins":           []string{"*"},
	"rate_limit.enabled":           false,
	"rate_limit.rate":              20,
	"rate_limit.burst":             40,
	"rate_limit.expires_in":        "3m",
	"redis.enabled":                false,
	"redis.host":                   "localhost",
	"redis.port":                   6379,
	"redis.prefix":                 "dashboard:stats",
	"redis.ttl":                    "24h",
}

// Load reads configs/{env}/api.yaml (or $CONFIG_PATH) and validates the result.
func Load() (*Config, error) {
	raw, err := pkgconfig.Load(ServiceName, pkgconfig.Options{Defaults: defaults})
	if err != nil {
		return nil, err
	}
	return FromSource(raw)
}

// FromSource maps an already loaded config source into Config.
func FromSource(raw pkgconfig.Config) (*Config, error) {
	cfg := &Config{}

	cfg.Service.Name = raw.GetString("service.name")
	cfg.Service.Environment = raw.GetString("service.environment")
	cfg.Service.Version = raw.GetString("service.version")

	cfg.Server.HTTP.Host = raw.GetString("server.http.host")
	cfg.Server.HTTP.Port = raw.GetInt("server.http.port")
	cfg.Server.HTTP.ShutdownTimeout = raw.GetDuration("server.http.shutdown_timeout")

	cfg.Database.Host = raw.GetString("database.host")
	cfg.Database.Port = raw.GetInt("database.port")
	cfg.Database.Name = raw.GetString("database.name")
	cfg.Database.User = raw.GetString("database.user")
	cfg.Database.Password = raw.GetString("database.password")
	cfg.Database.SSLMode = raw.GetString("database.sslmode")
	cfg.Database.MaxOpenConns = raw.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = raw.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = raw.GetDuration("database.conn_max_lifetime")
	cfg.Database.ConnMaxIdleTime = raw.GetDuration("database.conn_max_idle_time")
	cfg.Database.SlowThreshold = raw.GetDuration("database.slow_threshold")

	cfg.Log.Level = raw.GetString("log.level")
	cfg.Log.Format = raw.GetString("log.format")
	cfg.Log.Output = raw.GetString("log.output")
	cfg.Log.FilePath = raw.GetString("log.file_path")
	cfg.Log.Development = raw.GetBool("log.development")
	cfg.Log.SQL = raw.GetBool("log.sql")

	cfg.CORS.AllowOrigins = raw.GetStringSlice("cors.allow_origins")

	cfg.RateLimit.Enabled = raw.GetBool("rate_limit.enabled")
	cfg.RateLimit.Rate = raw.GetFloat64("rate_limit.rate")
	cfg.RateLimit.Burst = raw.GetInt("rate_limit.burst")
	cfg.RateLimit.ExpiresIn = raw.GetDuration("rate_limit.expires_in")

	cfg.Redis.Enabled = raw.GetBool("redis.enabled")
	cfg.Redis.Host = raw.GetString("redis.host")
	cfg.Redis.Port = raw.GetInt("redis.port")
	cfg.Redis.Password = raw.GetString("redis.password")
	cfg.Redis.DB = raw.GetInt("redis.db")
	cfg.Redis.Prefix = raw.GetString("redis.prefix")
	cfg.Redis.TTL = raw.GetDuration("redis.ttl")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
