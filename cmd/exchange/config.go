// Config loading for the exchange CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nitj-exchange/hub/internal/paths"
	"github.com/nitj-exchange/hub/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeyPriceCeiling = "price_ceiling"
	cfgKeyDefaultImage = "default_image"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Exchange CLI configuration

# Store backend: memory or sqlite. Both start from the built-in dataset;
# neither persists across runs.
backend: memory

# Data directory for the sqlite backend (optional; overridable by --data-dir).
# When unset, sqlite runs fully in memory.
# data_dir:

# Upper bound for listing prices and request budgets.
price_ceiling: 1000000

# Image substituted for listings submitted without one.
# default_image:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendMemory)
	v.SetDefault(cfgKeyPriceCeiling, float64(types.DefaultPriceCeiling))
	v.SetDefault(cfgKeyDefaultImage, types.DefaultImageURL)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// buildConfig merges config file values with flag overrides into the
// effective catalog configuration.
func buildConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Backend:      v.GetString(cfgKeyBackend),
		PriceCeiling: v.GetFloat64(cfgKeyPriceCeiling),
		DefaultImage: v.GetString(cfgKeyDefaultImage),
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}

	dataDir, err := resolveDataDir(v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, err
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// resolveDataDir resolves the data directory only when one was asked for;
// with no flag, config value, or env override the sqlite backend stays
// in-memory.
func resolveDataDir(configValue string) (string, error) {
	if flagDataDir == "" && configValue == "" && os.Getenv(paths.EnvDataDir) == "" {
		return "", nil
	}
	return paths.ResolveDataDir(flagDataDir, configValue)
}
