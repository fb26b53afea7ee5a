package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/gourav-1711/docs-genrator/model"
)

// Config carries the CLI defaults: where output lands, page geometry
// overrides, and the shop identity applied to bills that leave theirs
// blank.
type Config struct {
	Env    string             `mapstructure:"env"`
	OutDir string             `mapstructure:"out_dir"`
	Page   PageConfig         `mapstructure:"page"`
	Shop   model.ShopIdentity `mapstructure:"shop"`
}

// PageConfig overrides the page geometry in millimeters. Zero values keep
// the renderer defaults.
type PageConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Margin float64 `mapstructure:"margin"`
}

// LoadConfig reads the config file at path, or docgen.yaml from the
// working directory when path is empty. A missing default file is fine;
// environment variables with the DOCGEN_ prefix override file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("env", "development")
	v.SetDefault("out_dir", ".")
	v.SetEnvPrefix("docgen")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("docgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
