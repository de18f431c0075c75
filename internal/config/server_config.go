package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if config.MetricsPort <= 0 || config.MetricsPort > 65535 {
		return fmt.Errorf("metrics port must be between 1 and 65535")
	}

	if config.Port == config.MetricsPort {
		return fmt.Errorf("port and metrics port must differ")
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		return err
	}

	return viper.BindEnv("server.metrics_port", "METRICS_PORT")
}
