package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
	Level  string `mapstructure:"level"` // debug, info, warn, error
}

const envPrefix = "VIDEODL"

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Dir:    "logs",
			Prefix: "video_downloader_tui",
			Level:  "info",
		},
	}
}

// Load reads the optional config file and VIDEODL_* environment variables on
// top of the defaults. An empty configPath searches the standard locations.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.video-downloader")
	}

	// sem defaults registrados o AutomaticEnv não enxerga as chaves no Unmarshal
	v.SetDefault("backend.base_url", config.Backend.BaseURL)
	v.SetDefault("backend.timeout", config.Backend.Timeout)
	v.SetDefault("logging.dir", config.Logging.Dir)
	v.SetDefault("logging.prefix", config.Logging.Prefix)
	v.SetDefault("logging.level", config.Logging.Level)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	base, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend base url %q: %w", c.Backend.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return fmt.Errorf("backend base url must be http or https, got %q", c.Backend.BaseURL)
	}
	if base.Host == "" {
		return fmt.Errorf("backend base url %q has no host", c.Backend.BaseURL)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %s", c.Backend.Timeout)
	}

	if c.Logging.Dir == "" {
		return fmt.Errorf("log directory not configured")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
