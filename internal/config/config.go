// Package config loads optional project configuration for pyrepr.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the pyrepr configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the pyrepr configuration directory
const ConfigDirName = ".pyrepr"

// Config holds all pyrepr configuration
type Config struct {
	Add    AddConfig    `yaml:"add"`
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
}

// AddConfig holds configuration for __repr__ generation
type AddConfig struct {
	// KwargSplat is the placeholder rendered in place of **kwargs contents.
	KwargSplat string `yaml:"kwarg_splat"`
	// QualifiedName overrides the expression rendered as the constructor
	// name in generated methods.
	QualifiedName string `yaml:"qualified_name"`
}

// ScanConfig holds configuration for file discovery
type ScanConfig struct {
	// Exclude lists directory names and glob patterns skipped when a
	// directory argument is expanded to Python files.
	Exclude []string `yaml:"exclude"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Color controls diff coloring: auto, always, or never.
	Color string `yaml:"color"`
}

// ValidColorModes are the accepted values for output.color.
var ValidColorModes = []string{"auto", "always", "never"}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .pyrepr/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults
	merged := Merge(loaded, DefaultConfig())

	// Validate the merged config
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .pyrepr directory by walking up from startDir.
// Returns the path to the .pyrepr directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .pyrepr directory if it doesn't exist.
// Returns the path to the .pyrepr directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// WriteDefault writes the default configuration to the .pyrepr directory
// under workDir, creating the directory if needed. It refuses to overwrite
// an existing config file.
func WriteDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("%s already exists", configPath)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if !isValidColorMode(cfg.Output.Color) {
		return fmt.Errorf("%w: output.color must be one of %v, got %q",
			ErrInvalidConfig, ValidColorModes, cfg.Output.Color)
	}

	if cfg.Add.KwargSplat == "" {
		return fmt.Errorf("%w: add.kwarg_splat must not be empty", ErrInvalidConfig)
	}

	return nil
}

// isValidColorMode reports whether mode is an accepted output.color value.
func isValidColorMode(mode string) bool {
	for _, valid := range ValidColorModes {
		if mode == valid {
			return true
		}
	}
	return false
}
