// Package config provides configuration management for the chunking
// service. It follows Uber Go Style Guide conventions for struct
// organization and error handling.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Common configuration errors
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// SplitConfig holds the chunking parameters read from the "split" section
// of the configuration, defaulting to the entry point's own defaults. Its
// mapstructure keys use the entry point's parameter names. The RPC handler
// does not read it: a request field left unset takes the default from
// splitting.Options.WithDefaults, not from this section.
type SplitConfig struct {
	ParentBlockSize int    `mapstructure:"parent_block_size" validate:"min=1"`
	SubBlockSize    int    `mapstructure:"sub_block_size" validate:"min=1"`
	ParentSeparator string `mapstructure:"parent_separator"`
	SubSeparator    string `mapstructure:"sub_separator"`
}

// Validate checks the split configuration and sets defaults.
func (c *SplitConfig) Validate() error {
	if c.ParentBlockSize == 0 {
		c.ParentBlockSize = 1024
	}
	if c.SubBlockSize == 0 {
		c.SubBlockSize = 512
	}
	if c.ParentSeparator == "" {
		c.ParentSeparator = "\n\n\n\n"
	}
	if c.SubSeparator == "" {
		c.SubSeparator = "\n\n\n"
	}

	if c.SubBlockSize >= c.ParentBlockSize {
		return fmt.Errorf("%w: sub block size must be less than parent block size", ErrInvalidConfig)
	}
	return nil
}

// Config represents the complete application configuration. Structs are
// organized by functional domain with clear separation.
type Config struct {
	// Server configuration
	Server struct {
		Host string `mapstructure:"host" validate:"required"`
		Port string `mapstructure:"port" validate:"required,numeric"`
	} `mapstructure:"server"`

	// Object storage configuration, backing the preview_url collaborator.
	MinIO struct {
		Endpoint        string `mapstructure:"endpoint" validate:"required,url"`
		AccessKeyID     string `mapstructure:"access_key_id" validate:"required"`
		SecretAccessKey string `mapstructure:"secret_access_key" validate:"required"`
		BucketName      string `mapstructure:"bucket_name" validate:"required"`
		UseSSL          bool   `mapstructure:"use_ssl"`
	} `mapstructure:"minio"`

	// Upload validation configuration.
	Validation struct {
		MaxFileSize       int64    `mapstructure:"max_file_size"`
		AllowedExtensions []string `mapstructure:"allowed_extensions"`
	} `mapstructure:"validation"`

	// Default chunking parameters.
	Split SplitConfig `mapstructure:"split"`
}

// Validate performs configuration validation and sets defaults.
func (c *Config) Validate() error {
	if err := c.Split.Validate(); err != nil {
		return fmt.Errorf("split config: %w", err)
	}
	if c.Validation.MaxFileSize == 0 {
		c.Validation.MaxFileSize = 50 << 20 // 50 MiB
	}
	if len(c.Validation.AllowedExtensions) == 0 {
		c.Validation.AllowedExtensions = []string{".pdf", ".txt", ".md", ".jpg", ".jpeg", ".png", ".gif"}
	}
	return nil
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults configures sensible default values.
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("split.parent_block_size", 1024)
	viper.SetDefault("split.sub_block_size", 512)
	viper.SetDefault("split.parent_separator", "\n\n\n\n")
	viper.SetDefault("split.sub_separator", "\n\n\n")

	viper.SetDefault("minio.use_ssl", false)

	viper.SetDefault("validation.max_file_size", 50<<20)
	viper.SetDefault("validation.allowed_extensions", []string{".pdf", ".txt", ".md", ".jpg", ".jpeg", ".png", ".gif"})
}

// MustLoadConfig loads configuration and panics on failure.
// Use this only in main() or init() functions where failure should be fatal.
func MustLoadConfig(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return config
}
