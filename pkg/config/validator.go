package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/storely/mission-engine/pkg/errors"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validator checks configuration business rules before the worker starts.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every field of the configuration.
// Returns an error describing the first validation failure encountered.
func (v *Validator) Validate(cfg *Config) error {
	if !validLogLevels[cfg.LogLevel] {
		return errors.ErrConfigInvalid(fmt.Sprintf("unknown log level %q (must be debug, info, warn or error)", cfg.LogLevel))
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return errors.ErrConfigInvalid(fmt.Sprintf("unknown timezone %q: %v", cfg.Timezone, err))
	}

	if cfg.MissionCacheTTL <= 0 {
		return errors.ErrConfigInvalid("mission cache TTL must be positive")
	}

	if cfg.ProducerTimeout <= 0 {
		return errors.ErrConfigInvalid("producer timeout must be positive")
	}

	if err := v.validateSchedule("weekly revenue", cfg.WeeklyRevenueSchedule); err != nil {
		return err
	}
	if err := v.validateSchedule("monthly best seller", cfg.MonthlyBestSellerSchedule); err != nil {
		return err
	}

	return nil
}

func (v *Validator) validateSchedule(name, expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return errors.ErrConfigInvalid(fmt.Sprintf("invalid %s schedule %q: %v", name, expr, err))
	}
	return nil
}
