package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString    string `mapstructure:"connection_string"`
	RunExpirationInDays int    `mapstructure:"run_expiration_days"`
}

func (config DBConfig) validate() error {

	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}

	if config.RunExpirationInDays <= 0 {
		return fmt.Errorf("run expiration days must be greater than zero")
	}

	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING"); err != nil {
		return err
	}

	return viper.BindEnv("db.run_expiration_days", "RUN_EXPIRATION_DAYS")
}
