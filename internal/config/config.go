package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-pdfer/internal/fileutil"
	"github.com/alnah/go-pdfer/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxPolicyLength   = 16   // "overwrite"
	MaxFileModeLength = 5    // "0644"
	MaxPagePadding    = 9    // page numbers never need more digits
)

// Conflict policies accepted by output.onConflict and --on-conflict.
const (
	OnConflictPrompt    = "prompt"
	OnConflictOverwrite = "overwrite"
	OnConflictRename    = "rename"
	OnConflictAbort     = "abort"
)

// Defaults applied by DefaultConfig and kept for keys a file omits.
const (
	DefaultMergeOutput = "merged.pdf"
	DefaultPagePadding = 3
	DefaultFileMode    = "0644"
)

// appName is the directory searched under os.UserConfigDir().
const appName = "pdfer"

// Config holds all configuration for merge and split operations.
type Config struct {
	Merge  MergeConfig  `yaml:"merge"`
	Split  SplitConfig  `yaml:"split"`
	Output OutputConfig `yaml:"output"`
}

// MergeConfig defines merge options.
type MergeConfig struct {
	Output string `yaml:"output"` // Default output file (default: "merged.pdf")
}

// SplitConfig defines split options.
type SplitConfig struct {
	OutputDir   string `yaml:"outputDir"`   // Empty = "<stem>_pages"
	PagePadding int    `yaml:"pagePadding"` // Zero-pad width for page numbers, 0 disables
	StopOnError bool   `yaml:"stopOnError"` // Stop at the first write failure
}

// OutputConfig defines how output files are written.
type OutputConfig struct {
	OnConflict string `yaml:"onConflict"` // prompt, overwrite, rename, abort (default: prompt)
	FileMode   string `yaml:"fileMode"`   // Octal permissions (default: "0644")
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("merge.output", c.Merge.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("split.outputDir", c.Split.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if c.Split.PagePadding < 0 || c.Split.PagePadding > MaxPagePadding {
		return fmt.Errorf("%w: split.pagePadding must be between 0 and %d, got %d",
			ErrInvalidValue, MaxPagePadding, c.Split.PagePadding)
	}

	if err := validateFieldLength("output.onConflict", c.Output.OnConflict, MaxPolicyLength); err != nil {
		return err
	}
	if c.Output.OnConflict != "" {
		if _, err := ParseOnConflict(c.Output.OnConflict); err != nil {
			return fmt.Errorf("output.onConflict: %w", err)
		}
	}

	if err := validateFieldLength("output.fileMode", c.Output.FileMode, MaxFileModeLength); err != nil {
		return err
	}
	if c.Output.FileMode != "" {
		if _, err := parseFileMode(c.Output.FileMode); err != nil {
			return err
		}
	}

	return nil
}

// ParseOnConflict normalizes a conflict policy name.
func ParseOnConflict(s string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(s)); p {
	case OnConflictPrompt, OnConflictOverwrite, OnConflictRename, OnConflictAbort:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (must be prompt, overwrite, rename, or abort)", ErrInvalidValue, s)
	}
}

// Perm returns the configured file permissions, or 0644 when unset.
func (c *Config) Perm() os.FileMode {
	mode, err := parseFileMode(c.Output.FileMode)
	if err != nil || c.Output.FileMode == "" {
		return 0o644
	}
	return mode
}

func parseFileMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o777 {
		return 0, fmt.Errorf("%w: output.fileMode %q is not an octal permission like 0644", ErrInvalidValue, s)
	}
	if v&0o200 == 0 {
		return 0, fmt.Errorf("%w: output.fileMode %q must be writable by owner", ErrInvalidValue, s)
	}
	return os.FileMode(v), nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Merge:  MergeConfig{Output: DefaultMergeOutput},
		Split:  SplitConfig{PagePadding: DefaultPagePadding},
		Output: OutputConfig{OnConflict: OnConflictPrompt, FileMode: DefaultFileMode},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, the same shape LoadConfig reads.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// SearchPaths lists the files resolveConfigPath tries for name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/pdfer/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
