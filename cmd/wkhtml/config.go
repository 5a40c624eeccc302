package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-wkhtml/internal/fileutil"
	"github.com/alnah/go-wkhtml/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigExists    = errors.New("config file already exists")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// configExtensions are the recognized config file extensions, in lookup order.
var configExtensions = []string{".yaml", ".yml"}

// Config holds file-based defaults for the wkhtml CLI. CLI flags win
// over config values.
type Config struct {
	Binary          string         `yaml:"binary"`          // Renderer binary path
	Overwrite       bool           `yaml:"overwrite"`       // Allow replacing existing output files
	Timeout         string         `yaml:"timeout"`         // Renderer timeout (Go duration; empty = none)
	OutputExtension string         `yaml:"outputExtension"` // Extension for temp outputs (default "pdf")
	Options         map[string]any `yaml:"options"`         // Renderer options by canonical name
}

// DefaultConfig returns a neutral configuration with no options set.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or profile name. A
// string containing a path separator is read directly; a bare name is
// resolved against the search directories. A missing file is an error,
// never a silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// configSearchDirs returns the directories searched for named profiles:
// the working directory first, then the per-user config directory.
func configSearchDirs() []string {
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "go-wkhtml"))
	}
	return dirs
}

// resolveConfigPath finds the file backing a profile name, trying each
// search directory with each recognized extension.
func resolveConfigPath(name string) (string, error) {
	var tried []string
	for _, dir := range configSearchDirs() {
		for _, ext := range configExtensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// WriteDefaultConfig writes a starter config to path. An existing file
// is only replaced when overwrite is set.
func WriteDefaultConfig(path string, overwrite bool) error {
	if !overwrite && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := yamlutil.Encode(starterConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- config files are not secrets
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// starterConfig is the template written by --init-config: common settings
// filled with sensible values for the user to edit.
func starterConfig() *Config {
	return &Config{
		Binary:  "wkhtmltopdf",
		Timeout: "2m",
		Options: map[string]any{
			"page-size": "A4",
			"encoding":  "utf-8",
		},
	}
}
