package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/retry"
)

// Config represents the application configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
}

// SiteConfig carries the branding rendered in the page shell.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Brand       string `yaml:"brand,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
	GitHubURL   string `yaml:"github_url,omitempty"`
}

// ContentConfig locates the Markdown pages and navigation tree.
// An empty Directory selects the embedded site.
type ContentConfig struct {
	Directory string `yaml:"directory,omitempty"`
	NavFile   string `yaml:"nav_file,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr           string       `yaml:"addr"`
	LiveReload     bool         `yaml:"live_reload"`
	DisableMetrics bool         `yaml:"disable_metrics,omitempty"`
	Reload         ReloadConfig `yaml:"reload,omitempty"`
}

// ReloadConfig controls how a failed live reload is retried.
type ReloadConfig struct {
	Backoff      retry.Mode    `yaml:"backoff,omitempty"`
	InitialDelay time.Duration `yaml:"initial_delay,omitempty"`
	MaxDelay     time.Duration `yaml:"max_delay,omitempty"`
	MaxRetries   *int          `yaml:"max_retries,omitempty"`
}

// Policy converts the settings into a retry policy. Unset fields keep
// the retry package defaults.
func (r ReloadConfig) Policy() retry.Policy {
	retries := -1
	if r.MaxRetries != nil {
		retries = *r.MaxRetries
	}
	return retry.NewPolicy(r.Backoff, r.InitialDelay, r.MaxDelay, retries)
}

// UsesEmbeddedContent reports whether pages come from the binary.
func (c *Config) UsesEmbeddedContent() bool {
	return c.Content.Directory == ""
}

// Default returns a configuration that renders the embedded site.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		// Missing .env files are expected.
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, ferrors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- path is operator supplied
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Fatal().
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configPath when it exists. When it does not and the
// path was not set explicitly, the embedded defaults are returned.
func LoadOrDefault(configPath string, explicit bool) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) && !explicit {
		return Default(), nil
	}
	return Load(configPath)
}

// Parse decodes YAML configuration, expanding ${VAR} references first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			Build()
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		Site: SiteConfig{
			Title:       DefaultTitle,
			Description: DefaultDescription,
			Brand:       DefaultBrand,
			BaseURL:     "/",
			GitHubURL:   DefaultGitHubURL,
		},
		Content: ContentConfig{
			Directory: DefaultSiteDir + "/content",
			NavFile:   DefaultSiteDir + "/nav.yaml",
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Server: ServerConfig{
			Addr:       DefaultAddr,
			LiveReload: true,
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Fatal().
			Build()
	}
	return nil
}
