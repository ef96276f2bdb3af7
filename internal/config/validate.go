package config

import (
	"errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidOutput indicates an unrecognized output format.
	ErrInvalidOutput = errors.New("output must be \"text\" or \"json\"")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.Output {
	case "", "text", "json":
	default:
		errs = append(errs, ErrInvalidOutput)
	}

	return errs
}
