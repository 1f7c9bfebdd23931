// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the manager tuning knobs the bdd subcommands pass down
// to ddcore, read from the environment (YMLOGIC_ prefix), a config
// file, or the built-in defaults, in that order of precedence.
type Config struct {
	NodeSize    int `mapstructure:"node_size"`
	CacheSize   int `mapstructure:"cache_size"`
	GCThreshold int `mapstructure:"gc_threshold"`
}

// LoadConfig reads a Config from configPath, or from ymlogic.yaml in
// the working directory when configPath is empty. A missing file is
// not an error; the defaults below apply.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("node_size", 257)
	v.SetDefault("cache_size", 10000)
	v.SetDefault("gc_threshold", 50000)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ymlogic")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("YMLOGIC")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
