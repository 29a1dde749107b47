package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Logging LoggingConfig `mapstructure:"logging"`
	Presets PresetConfig  `mapstructure:"presets"`
}

// ClientConfig holds HTTP client settings
type ClientConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	TLSVerify       bool          `mapstructure:"tls_verify"`
	FollowRedirects bool          `mapstructure:"follow_redirects"`
}

// PresetConfig maps preset names to filter expressions
type PresetConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
