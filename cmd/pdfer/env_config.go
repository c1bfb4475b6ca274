package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-pdfer/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // PDFER_CONFIG: config file name or path
	OnConflict  string // PDFER_ON_CONFLICT: prompt, overwrite, rename, abort
	MergeOutput string // PDFER_MERGE_OUTPUT: default merge output file
	SplitDir    string // PDFER_SPLIT_DIR: default split output directory
}

// knownEnvVars lists valid PDFER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PDFER_CONFIG":       true,
	"PDFER_ON_CONFLICT":  true,
	"PDFER_MERGE_OUTPUT": true,
	"PDFER_SPLIT_DIR":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:  os.Getenv("PDFER_CONFIG"),
		OnConflict:  os.Getenv("PDFER_ON_CONFLICT"),
		MergeOutput: os.Getenv("PDFER_MERGE_OUTPUT"),
		SplitDir:    os.Getenv("PDFER_SPLIT_DIR"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized PDFER_* variables.
// Helps catch typos like PDFER_ONCONFLICT instead of PDFER_ON_CONFLICT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PDFER_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace file values; flags are applied afterwards, so
// the order is: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) error {
	if env.OnConflict != "" {
		policy, err := config.ParseOnConflict(env.OnConflict)
		if err != nil {
			return fmt.Errorf("PDFER_ON_CONFLICT: %w", err)
		}
		cfg.Output.OnConflict = policy
	}
	if env.MergeOutput != "" {
		cfg.Merge.Output = env.MergeOutput
	}
	if env.SplitDir != "" {
		cfg.Split.OutputDir = env.SplitDir
	}
	return cfg.Validate()
}
