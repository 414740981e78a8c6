package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/denham/simtop/internal/sample"
)

const (
	defaultVariant      = "stock"
	defaultCapacity     = sample.DefaultCapacity
	defaultInterval     = 3 * time.Second
	defaultLogLevel     = "info"
	defaultLogDirectory = "log"
	defaultLogFilename  = "simtop.log"
	defaultLogMaxSizeMB = 20
	defaultLogMaxBackup = 3
	defaultLogMaxAge    = 7
	defaultMetricsAddr  = "127.0.0.1:9190"

	// Environment variable prefix
	envPrefix = "SIMTOP"
)

type Config struct {
	Variant  string        `mapstructure:"variant"`
	Capacity int           `mapstructure:"capacity"`
	Interval time.Duration `mapstructure:"interval"`
	Seed     int64         `mapstructure:"seed"` // 0 = seed from the clock
	Metrics  MetricsConfig `mapstructure:"metrics"`
	Log      LogConfig     `mapstructure:"log"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Directory  string `mapstructure:"directory"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxSize"`    // Max size in MB
	MaxBackups int    `mapstructure:"maxBackups"` // Max backup files
	MaxAge     int    `mapstructure:"maxAge"`     // Max days to retain
	Compress   bool   `mapstructure:"compress"`
}

// Load initializes viper, reads the optional config file, applies defaults,
// unmarshals, and validates. A missing file is fine: the dashboard runs on
// defaults and environment overrides alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	configureViper(v, configPath)
	setDefaults(v)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshallingConfig, err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func configureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("variant", defaultVariant)
	v.SetDefault("capacity", defaultCapacity)
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("seed", 0)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", defaultMetricsAddr)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.directory", defaultLogDirectory)
	v.SetDefault("log.filename", defaultLogFilename)
	v.SetDefault("log.maxSize", defaultLogMaxSizeMB)
	v.SetDefault("log.maxBackups", defaultLogMaxBackup)
	v.SetDefault("log.maxAge", defaultLogMaxAge)
	v.SetDefault("log.compress", false)
}

// readConfigFile reads the config file if one was given; the file must then
// exist and parse.
func readConfigFile(v *viper.Viper, configPath string) error {
	if configPath == "" {
		return nil
	}
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return ErrConfigFileMissing
		}
		return fmt.Errorf("%w: %w", ErrReadingConfigFile, err)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if _, ok := sample.VariantByName(cfg.Variant); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, cfg.Variant)
	}
	if cfg.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if cfg.Interval <= 0 {
		return ErrInvalidInterval
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		return ErrEmptyMetricsAddr
	}
	return nil
}
