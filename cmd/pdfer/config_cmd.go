package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdfer/internal/config"
	"github.com/alnah/go-pdfer/internal/hints"
)

// loadConfig builds the effective configuration for one command: the file
// named by --config or PDFER_CONFIG (else env.Config), then env overrides.
func loadConfig(flagPath string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()

	name := flagPath
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		base := config.DefaultConfig()
		if env.Config != nil {
			*base = *env.Config
		}
		cfg = base
	}

	if err := applyEnvConfig(envCfg, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) error {
	var common commonFlags
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(fs, &common)
	fs.Usage = func() { printConfigUsage(env.Stdout) }
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments, got %q", ErrTooManyInputs, fs.Args())
	}

	cfg, err := loadConfig(common.config, env)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
