package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type SearchConfig struct {
	Key                  string  `mapstructure:"key"`
	BaseURL              string  `mapstructure:"base_url"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config SearchConfig) validate() error {
	var errs []error

	if config.Key == "" {
		errs = append(errs, fmt.Errorf("missing variable: search key"))
	}

	if config.BaseURL == "" {
		errs = append(errs, fmt.Errorf("missing variable: search base url"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config SearchConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("search.key", "SEARCH_KEY"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("search.base_url", "SEARCH_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("search.max_requests_per_second", "SEARCH_MAX_REQUESTS_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
