package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type SessionsConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

func (config SessionsConfig) validate() error {

	if config.TTL <= 0 {
		return fmt.Errorf("session ttl must be greater than zero")
	}

	return nil
}

func (config SessionsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("sessions.ttl", "SESSION_TTL")
}
