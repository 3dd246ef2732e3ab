package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full runtime configuration. Every value has a default so
// the CLI works with no config file at all; a crossrate.yaml file or
// CROSSRATE_* environment variables override individual keys.
type Config struct {
	API        APIConfig        `mapstructure:"api"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Credential CredentialConfig `mapstructure:"credential"`
	Pair       PairConfig       `mapstructure:"pair"`
	Display    DisplayConfig    `mapstructure:"display"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Path string        `mapstructure:"path"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type CredentialConfig struct {
	Path string `mapstructure:"path"`
}

type PairConfig struct {
	Base  string `mapstructure:"base"`
	Quote string `mapstructure:"quote"`
}

type DisplayConfig struct {
	HighlightCross   float64 `mapstructure:"highlight_cross"`
	HighlightInverse float64 `mapstructure:"highlight_inverse"`
	NoColor          bool    `mapstructure:"no_color"`
}

// Load reads configuration from path, falling back to defaults when no config
// file is present.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "https://openexchangerates.org")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("cache.path", "currentRates.json")
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("credential.path", "api_key.txt")
	v.SetDefault("pair.base", "AUD")
	v.SetDefault("pair.quote", "EUR")
	v.SetDefault("display.highlight_cross", 1.50)
	v.SetDefault("display.highlight_inverse", 0.70)
	v.SetDefault("display.no_color", false)

	v.AddConfigPath(path)
	v.SetConfigName("crossrate")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CROSSRATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
