package runtimeconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// legacyEnv holds the variable names used by the previous deployment so
// existing environments keep working.
type legacyEnv struct {
	ProjectID string `env:"NEXT_PUBLIC_SANITY_PROJECT_ID"`
	Dataset   string `env:"NEXT_PUBLIC_SANITY_DATASET"`
}

// LoadOptions controls FromEnv.
type LoadOptions struct {
	// DotEnvFiles are loaded before parsing. Missing files are ignored.
	DotEnvFiles []string
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// FromEnv builds a Config from DefaultConfig overlaid with environment
// variables. It does not validate the result.
func FromEnv(opts LoadOptions) (Config, error) {
	for _, file := range opts.DotEnvFiles {
		if strings.TrimSpace(file) == "" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	parseOpts := env.Options{}
	if opts.Environment != nil {
		parseOpts.Environment = opts.Environment
	}

	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, parseOpts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var legacy legacyEnv
	if err := env.ParseWithOptions(&legacy, parseOpts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.Content.ProjectID) == "" {
		cfg.Content.ProjectID = strings.TrimSpace(legacy.ProjectID)
	}
	if legacy.Dataset != "" && !isSet(parseOpts, "SANITY_DATASET") {
		cfg.Content.Dataset = strings.TrimSpace(legacy.Dataset)
	}
	return cfg, nil
}

func isSet(opts env.Options, key string) bool {
	if opts.Environment != nil {
		_, ok := opts.Environment[key]
		return ok
	}
	_, ok := os.LookupEnv(key)
	return ok
}
