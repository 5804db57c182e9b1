package config

import (
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/storely/mission-engine/pkg/errors"
)

// Config holds the application-level settings for the mission engine worker.
// Database settings live in pkg/db and are loaded separately.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL,default=info"`

	// Timezone is the IANA zone name producer windows are resolved in.
	Timezone string `env:"TIMEZONE,default=UTC"`

	// MissionCacheTTL bounds how stale cached mission definitions may get.
	MissionCacheTTL time.Duration `env:"MISSION_CACHE_TTL,default=5m"`

	// Cron schedules for the periodic producers, standard 5-field syntax.
	WeeklyRevenueSchedule     string `env:"WEEKLY_REVENUE_SCHEDULE,default=0 3 * * 1"`
	MonthlyBestSellerSchedule string `env:"MONTHLY_BEST_SELLER_SCHEDULE,default=0 4 1 * *"`

	// ProducerTimeout bounds one full producer cycle across all stores.
	ProducerTimeout time.Duration `env:"PRODUCER_TIMEOUT,default=10m"`
}

// Load reads the configuration from environment variables and validates it.
// Invalid config fails fast: the worker must not start with a broken setup.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, errors.ErrConfigInvalid(err.Error())
	}

	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location resolves the configured timezone. Call after validation.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
