package main

import (
	"fmt"

	"github.com/jonathan/resume-deck/internal/config"
)

// resolveConfig layers explicitly set flags over the config file, then the
// environment, then the built-in defaults, and validates the result.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	cfg := flags.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	// Bools only ever switch on from the file
	if fileCfg.Verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
