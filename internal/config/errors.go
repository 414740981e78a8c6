package config

import "errors"

var (
	ErrReadingConfigFile   = errors.New("failed to read config file")
	ErrUnmarshallingConfig = errors.New("failed to unmarshal config")
	ErrConfigFileMissing   = errors.New("config file not found")
	ErrUnknownVariant      = errors.New("unknown variant")
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrInvalidInterval     = errors.New("interval must be positive")
	ErrEmptyMetricsAddr    = errors.New("metrics addr cannot be empty when metrics are enabled")
)
