package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type MatchingConfig struct {
	MaxResults int `mapstructure:"max_results"`
	TopK       int `mapstructure:"top_k"`
}

func (config MatchingConfig) validate() error {
	var errs []error

	if config.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("max results must be greater than zero"))
	}

	if config.TopK <= 0 {
		errs = append(errs, fmt.Errorf("top k must be greater than zero"))
	}

	if config.TopK > config.MaxResults {
		errs = append(errs, fmt.Errorf("top k must not exceed max results"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config MatchingConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("matching.max_results", "MAX_RESULTS"); err != nil {
		return err
	}

	return viper.BindEnv("matching.top_k", "TOP_K")
}
