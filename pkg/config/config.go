// Package config loads the humanizer configuration from YAML, with ${VAR}
// expansion and HUMANIZER_* environment fallbacks, and turns it into the
// gateway, detector, logger and default request the pipeline runs with.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/germanamz/humanize/pkg/detector"
	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/germanamz/humanize/pkg/providers"
	"github.com/germanamz/humanize/pkg/style"
	"gopkg.in/yaml.v3"
)

// Environment fallbacks, consulted for fields the file leaves empty.
const (
	EnvProvider    = "HUMANIZER_PROVIDER"
	EnvAPIKey      = "HUMANIZER_API_KEY"
	EnvModels      = "HUMANIZER_MODELS"
	EnvDetectorURL = "HUMANIZER_DETECTOR_URL"
	EnvDetectorKey = "HUMANIZER_DETECTOR_KEY"
)

// Config is the top-level configuration.
type Config struct {
	Provider   ProviderConfig   `yaml:"provider"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Detector   DetectorConfig   `yaml:"detector"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Log        LogConfig        `yaml:"log"`
}

// ProviderConfig selects the LLM provider. An empty APIKey means fallback runs.
type ProviderConfig struct {
	Name    string   `yaml:"name"`
	APIKey  string   `yaml:"api_key"`
	Models  []string `yaml:"models"`
	BaseURL string   `yaml:"base_url"`
}

// OpenRouterConfig holds the attribution headers sent to OpenRouter.
type OpenRouterConfig struct {
	Referer string `yaml:"referer"`
	Title   string `yaml:"title"`
}

// DetectorConfig points at the optional AI-likelihood detector.
type DetectorConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Timeout  string `yaml:"timeout"`
}

// DefaultsConfig holds the request defaults.
type DefaultsConfig struct {
	Level   string `yaml:"level"`
	Tone    string `yaml:"tone"`
	Timeout string `yaml:"timeout"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file exists, with the
// environment fallbacks applied.
func Default() Config {
	var cfg Config
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML file and returns a validated Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing, so API keys can stay in the environment (e.g. loaded from a
// .env file) rather than in the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	return Parse(data)
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// Parse expands environment references in data, decodes it, applies the
// environment fallbacks and defaults, and validates the result.
func Parse(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setIfEmpty(&c.Provider.Name, os.Getenv(EnvProvider))
	setIfEmpty(&c.Provider.APIKey, os.Getenv(EnvAPIKey))
	setIfEmpty(&c.Detector.Endpoint, os.Getenv(EnvDetectorURL))
	setIfEmpty(&c.Detector.APIKey, os.Getenv(EnvDetectorKey))

	if len(c.Provider.Models) == 0 {
		for _, m := range strings.Split(os.Getenv(EnvModels), ",") {
			if m = strings.TrimSpace(m); m != "" {
				c.Provider.Models = append(c.Provider.Models, m)
			}
		}
	}
}

func (c *Config) applyDefaults() {
	setIfEmpty(&c.Provider.Name, string(providers.OpenAI))
	setIfEmpty(&c.OpenRouter.Referer, providers.DefaultReferer)
	setIfEmpty(&c.OpenRouter.Title, providers.DefaultTitle)
	setIfEmpty(&c.Defaults.Level, string(style.Medium))
	setIfEmpty(&c.Defaults.Tone, string(style.Conversational))
	setIfEmpty(&c.Log.Level, "info")
	setIfEmpty(&c.Log.Format, "text")
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Validate checks level, tone, log settings and durations. The provider name
// is not checked here; an unsupported provider fails at call time.
func (c Config) Validate() error {
	if _, err := style.ParseLevel(c.Defaults.Level); err != nil {
		return fmt.Errorf("config: defaults.level: %w", err)
	}
	if _, err := style.ParseTone(c.Defaults.Tone); err != nil {
		return fmt.Errorf("config: defaults.tone: %w", err)
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format: unknown format %q", c.Log.Format)
	}
	if _, err := parseDuration(c.Defaults.Timeout); err != nil {
		return fmt.Errorf("config: defaults.timeout: %w", err)
	}
	if _, err := parseDuration(c.Detector.Timeout); err != nil {
		return fmt.Errorf("config: detector.timeout: %w", err)
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// Timeout returns the per-request timeout. Zero means none.
func (c Config) Timeout() time.Duration {
	d, _ := parseDuration(c.Defaults.Timeout)
	return d
}

// ProviderSettings returns the provider selection for requests.
func (c Config) ProviderSettings() *humanizer.ProviderSettings {
	return &humanizer.ProviderSettings{
		Provider: providers.ID(strings.ToLower(strings.TrimSpace(c.Provider.Name))),
		APIToken: c.Provider.APIKey,
		Models:   c.Provider.Models,
	}
}

// Request returns a request template carrying the configured defaults.
// Callers fill in Text.
func (c Config) Request() humanizer.Request {
	level, _ := style.ParseLevel(c.Defaults.Level)
	tone, _ := style.ParseTone(c.Defaults.Tone)

	return humanizer.Request{
		Level:    level,
		Tone:     tone,
		Provider: c.ProviderSettings(),
	}
}

// Gateway builds the provider gateway. A configured base_url replaces the
// endpoint of the configured provider only.
func (c Config) Gateway(client *http.Client) *providers.Gateway {
	g := &providers.Gateway{
		Client:  client,
		Referer: c.OpenRouter.Referer,
		Title:   c.OpenRouter.Title,
	}
	if c.Provider.BaseURL != "" {
		g.BaseURLs = map[providers.ID]string{
			c.ProviderSettings().Provider: strings.TrimRight(c.Provider.BaseURL, "/"),
		}
	}
	return g
}

// DetectorClient builds the detector client. It is returned even when
// unconfigured; Score then reports no signal without any network call.
func (c Config) DetectorClient(client *http.Client, logger *slog.Logger) *detector.Client {
	d := detector.New(c.Detector.Endpoint, c.Detector.APIKey, client)
	d.Timeout, _ = parseDuration(c.Detector.Timeout)
	d.Logger = logger
	return d
}

// Logger builds the slog logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLogLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}

	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
