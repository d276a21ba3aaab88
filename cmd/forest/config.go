package main

import (
	"github.com/spf13/viper"

	"github.com/FrenchMajesty/partition"
)

// Config holds the CLI configuration.
// Values are populated from .forest.yaml, FOREST_* env vars (a .env file in
// the working directory is loaded first) and CLI flags.
type Config struct {
	StatePath    string `mapstructure:"state_path"`
	AutoRegister bool   `mapstructure:"auto_register"`
	Verbose      bool   `mapstructure:"verbose"`
}

// loadConfig reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("state_path", partition.DefaultStatePath)
	v.SetDefault("auto_register", false)
	v.SetDefault("verbose", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
