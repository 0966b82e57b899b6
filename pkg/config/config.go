package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Password     PasswordConfig
	Stats        StatsConfig
	Seed         SeedConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NORTHHAUL_APP_ENV" default:"dev"`
	Port         string `envconfig:"NORTHHAUL_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NORTHHAUL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NORTHHAUL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NORTHHAUL_DB_DSN"`
	Driver string `envconfig:"NORTHHAUL_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"NORTHHAUL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NORTHHAUL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NORTHHAUL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NORTHHAUL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NORTHHAUL_REDIS_URL"`
	Address      string        `envconfig:"NORTHHAUL_REDIS_ADDR"`
	Password     string        `envconfig:"NORTHHAUL_REDIS_PASSWORD"`
	DB           int           `envconfig:"NORTHHAUL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NORTHHAUL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NORTHHAUL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NORTHHAUL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NORTHHAUL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NORTHHAUL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a Redis endpoint was provided. When it is not,
// the API falls back to in-process session storage (dev/test only).
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type SessionConfig struct {
	CookieName   string        `envconfig:"NORTHHAUL_SESSION_COOKIE_NAME" default:"northhaul_admin_session"`
	TTL          time.Duration `envconfig:"NORTHHAUL_SESSION_TTL" default:"12h"`
	CookieSecure bool          `envconfig:"NORTHHAUL_SESSION_COOKIE_SECURE" default:"false"`
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"NORTHHAUL_BCRYPT_COST" default:"12"`
}

// StatsConfig carries the marketing baseline offsets added to live counts on
// the public stats endpoint. Defaults match the numbers the original site
// shipped with; set them to zero to report genuine counts.
type StatsConfig struct {
	JobsBaseline      int `envconfig:"NORTHHAUL_STATS_JOBS_BASELINE" default:"734"`
	EmployersBaseline int `envconfig:"NORTHHAUL_STATS_EMPLOYERS_BASELINE" default:"370"`
	HiredBaseline     int `envconfig:"NORTHHAUL_STATS_HIRED_BASELINE" default:"1485"`
}

type SeedConfig struct {
	AdminUsername string `envconfig:"NORTHHAUL_SEED_ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"NORTHHAUL_SEED_ADMIN_PASSWORD"`
	Fixtures      bool   `envconfig:"NORTHHAUL_SEED_FIXTURES" default:"false"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NORTHHAUL_AUTO_MIGRATE" default:"false"`
}
