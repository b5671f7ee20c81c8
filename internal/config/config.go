package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/platform"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Categories      []CategoryConfig `yaml:"categories" toml:"categories"`
	DestinationRoot string           `yaml:"destination_root" toml:"destination_root"` // empty means the home directory
	Overwrite       bool             `yaml:"overwrite" toml:"overwrite"`
	DryRun          bool             `yaml:"dry_run" toml:"dry_run"`
	LogLevel        string           `yaml:"log_level" toml:"log_level"`
	LogFormat       string           `yaml:"log_format" toml:"log_format"`
	Output          string           `yaml:"output" toml:"output"`
}

// CategoryConfig is one entry of the category table. Order in the file is
// the lookup order.
type CategoryConfig struct {
	Name       string   `yaml:"name" toml:"name"`
	Extensions []string `yaml:"extensions" toml:"extensions"`
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
	validOutputs    = []string{"summary", "table", "json", "yaml"}
)

// Load loads configuration from a file. Files ending in .toml are parsed as
// TOML, everything else as YAML. Keys missing from the file keep their
// default values.
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := GetDefault()
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(config.Categories) == 0 {
		config.Categories = defaultCategories()
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		data, err = toml.Marshal(config)
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Table(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}

	if c.DestinationRoot != "" && !filepath.IsAbs(c.DestinationRoot) && !strings.HasPrefix(c.DestinationRoot, "~") {
		return fmt.Errorf("destination root must be absolute or start with ~: %s", c.DestinationRoot)
	}

	if c.LogLevel != "" && !oneOf(c.LogLevel, validLogLevels) {
		return fmt.Errorf("log level must be one of %s: %q", strings.Join(validLogLevels, ", "), c.LogLevel)
	}
	if c.LogFormat != "" && !oneOf(c.LogFormat, validLogFormats) {
		return fmt.Errorf("log format must be one of %s: %q", strings.Join(validLogFormats, ", "), c.LogFormat)
	}
	if c.Output != "" && !oneOf(c.Output, validOutputs) {
		return fmt.Errorf("output must be one of %s: %q", strings.Join(validOutputs, ", "), c.Output)
	}

	return nil
}

// Table builds the immutable category table described by the config
func (c *Config) Table() (*category.Table, error) {
	cats := make([]category.Category, len(c.Categories))
	for i, cc := range c.Categories {
		cats[i] = category.Category{Name: cc.Name, Extensions: cc.Extensions}
	}
	return category.NewTable(cats)
}

// ResolveDestinationRoot returns the absolute destination root, expanding
// a leading ~ to homeDir. An empty root resolves to homeDir itself.
func (c *Config) ResolveDestinationRoot(homeDir string) string {
	root := c.DestinationRoot
	switch {
	case root == "" || root == "~":
		return homeDir
	case strings.HasPrefix(root, "~/"):
		return filepath.Join(homeDir, root[2:])
	default:
		return filepath.Clean(root)
	}
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	configDir, err := platform.GetUserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "file-organizer", "config.yaml"), nil
}

// EnsureConfigExists writes an example config to configPath unless a file
// is already there. A .toml path gets the defaults in TOML, anything else
// the commented YAML example. It reports whether a file was created.
func EnsureConfigExists(configPath string) (bool, error) {
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		body, err := toml.Marshal(GetDefault())
		if err != nil {
			return false, fmt.Errorf("failed to marshal config: %w", err)
		}
		data = append([]byte(exampleTOMLHeader), body...)
	} else {
		data = []byte(GetExampleConfig())
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
