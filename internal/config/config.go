package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gentestx/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is passed explicitly
// to every component that needs it.
type Config struct {
	// Workspace settings
	WorkspaceRoot string

	// Completion endpoint settings
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int

	// Generation settings
	OutputLocation string
	TestFramework  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	APIKey         string
	Framework      string
	OutputLocation string
	Workspace      string
	ConfigPath     string
	NameFilter     string
	Language       string
	DryRun         bool
	View           bool
	Verbose        bool
	LogFile        string
}

// New creates a new Config with defaults. The API key is intentionally empty.
func New() *Config {
	cfg := &Config{
		WorkspaceRoot:  DefaultWorkspaceRoot,
		Endpoint:       DefaultEndpoint,
		Model:          DefaultModel,
		Temperature:    DefaultTemperature,
		MaxTokens:      DefaultMaxTokens,
		OutputLocation: DefaultOutputLocation,
		TestFramework:  DefaultTestFramework,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load builds a config from defaults, the optional YAML file, the workspace
// .env file, the process environment and finally the flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.Workspace != "" {
		cfg.WorkspaceRoot = flags.Workspace
	}

	configPath := flags.ConfigPath
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(cfg.WorkspaceRoot, DefaultConfigFile)
	}
	if err := cfg.applyFile(configPath); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.WorkspaceRoot, DefaultEnvFile))
	cfg.applyEnvOverrides()

	// Apply flag overrides
	if flags.APIKey != "" {
		cfg.APIKey = flags.APIKey
	}
	if flags.Framework != "" {
		cfg.TestFramework = flags.Framework
	}
	if flags.OutputLocation != "" {
		cfg.OutputLocation = flags.OutputLocation
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.APIKey = key
	} else if key := os.Getenv(EnvGroqAPIKey); key != "" && c.APIKey == "" {
		c.APIKey = key
	}
	if v := os.Getenv(EnvOutputLocation); v != "" {
		c.OutputLocation = v
	}
	if v := os.Getenv(EnvTestFramework); v != "" {
		c.TestFramework = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
}

// Validate checks everything that must hold before a network call is made.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &domain.ConfigurationError{Field: "api_key", Err: domain.ErrMissingAPIKey}
	}
	if !slices.Contains(KnownFrameworks, c.TestFramework) {
		return &domain.ConfigurationError{
			Field: "test_framework",
			Err:   fmt.Errorf("unknown test framework %q (expected one of %v)", c.TestFramework, KnownFrameworks),
		}
	}
	if c.OutputLocation != OutputLocationSameDirectory && c.OutputLocation != OutputLocationTestDirectory {
		return &domain.ConfigurationError{
			Field: "output_location",
			Err:   fmt.Errorf("unknown output location %q (expected %s or %s)", c.OutputLocation, OutputLocationSameDirectory, OutputLocationTestDirectory),
		}
	}
	if c.Endpoint == "" {
		return &domain.ConfigurationError{Field: "endpoint", Err: errors.New("endpoint is empty")}
	}
	return nil
}

// GetWorkspaceRoot returns the workspace root as an absolute path when possible.
func (c *Config) GetWorkspaceRoot() string {
	if abs, err := filepath.Abs(c.WorkspaceRoot); err == nil {
		return abs
	}
	return c.WorkspaceRoot
}

// GetStatePath returns the full path to the last generation report.
// Resolves to an absolute path so generate and show always use the same file regardless of cwd.
func (c *Config) GetStatePath() string {
	return filepath.Join(c.GetWorkspaceRoot(), DefaultStateDir, DefaultStateFile)
}
