package types

import (
	"errors"
	"net/url"
)

// Config holds backend selection and catalog parameters.
type Config struct {
	Backend      string  `json:"backend" yaml:"backend"`
	DataDir      string  `json:"data_dir" yaml:"data_dir"`
	PriceCeiling float64 `json:"price_ceiling" yaml:"price_ceiling"`
	DefaultImage string  `json:"default_image" yaml:"default_image"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Default catalog parameters.
const (
	// DefaultPriceCeiling bounds price and maxPrice on submitted drafts.
	DefaultPriceCeiling = 1_000_000

	// DefaultImageURL is substituted for listings submitted without an image.
	DefaultImageURL = "https://placehold.co/800x600?text=No+Image"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrCeilingInvalid  = errors.New("price ceiling must be positive")
	ErrImageURLInvalid = errors.New("default image must be an absolute URL")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// DefaultConfig returns a Config with the in-memory backend and the default
// catalog parameters.
func DefaultConfig() Config {
	return Config{
		Backend:      BackendMemory,
		PriceCeiling: DefaultPriceCeiling,
		DefaultImage: DefaultImageURL,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.PriceCeiling <= 0 {
		return ErrCeilingInvalid
	}
	if c.DefaultImage != "" {
		u, err := url.Parse(c.DefaultImage)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return ErrImageURLInvalid
		}
	}
	return nil
}
