// Package config loads insightui settings from YAML or TOML files with
// INSIGHTUI_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-insightui/pkg/fetch"
)

// EnvPrefix prefixes every environment override, e.g. INSIGHTUI_FETCH_TIMEOUT.
const EnvPrefix = "INSIGHTUI_"

// Config is the complete runtime configuration.
type Config struct {
	Fetch  FetchConfig  `mapstructure:"fetch"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Render RenderConfig `mapstructure:"render"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// FetchConfig controls the remote document fetcher.
type FetchConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Client   string        `mapstructure:"client"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RedisConfig enables the document cache when Addr is set.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Enabled reports whether a redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

type RenderConfig struct {
	// MaxDepth bounds element nesting; 0 disables the guard.
	MaxDepth     int    `mapstructure:"max_depth"`
	ErrorMessage string `mapstructure:"error_message"`
	Backend      string `mapstructure:"backend"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig selects the HTML preview theme. Tokens override manifest
// tokens of the same name.
type ThemeConfig struct {
	Name    string            `mapstructure:"name"`
	Variant string            `mapstructure:"variant"`
	Tokens  map[string]string `mapstructure:"tokens"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fetch: FetchConfig{
			BaseURL:  fetch.DefaultBaseURL,
			Client:   fetch.DefaultClientName,
			Timeout:  fetch.DefaultTimeout,
			CacheTTL: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Prefix: fetch.DefaultCachePrefix,
		},
		Render: RenderConfig{
			MaxDepth: 64,
			Backend:  "jsx",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Theme: ThemeConfig{
			Name: "insight",
		},
	}
}

// Load reads path (when non-empty) and applies environment overrides from the
// process environment on top of Default.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.Environ())
}

// LoadWithEnv is Load with an explicit KEY=VALUE environment list.
func LoadWithEnv(path string, environ []string) (Config, error) {
	raw := map[string]any{}
	if strings.TrimSpace(path) != "" {
		fileValues, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		raw = fileValues
	}
	applyEnv(raw, environ)

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Fetch.BaseURL) == "" {
		errs = append(errs, errors.New("fetch.base_url is required"))
	}
	if c.Fetch.Timeout < 0 {
		errs = append(errs, errors.New("fetch.timeout must not be negative"))
	}
	if c.Fetch.CacheTTL < 0 {
		errs = append(errs, errors.New("fetch.cache_ttl must not be negative"))
	}
	if c.Render.MaxDepth < 0 {
		errs = append(errs, errors.New("render.max_depth must not be negative"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, errors.New("redis.db must not be negative"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	values := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("config: decode toml %q: %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("config: decode yaml %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file extension %q", filepath.Ext(path))
	}
	return values, nil
}

var knownSections = map[string]bool{
	"fetch":  true,
	"redis":  true,
	"render": true,
	"server": true,
	"log":    true,
	"theme":  true,
}

// applyEnv maps INSIGHTUI_<SECTION>_<KEY>=value onto raw[section][key].
// INSIGHTUI_THEME_TOKENS_<NAME> sets a single theme token.
func applyEnv(raw map[string]any, environ []string) {
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || key == "" || !knownSections[section] {
			continue
		}

		values := sectionMap(raw, section)
		if section == "theme" && strings.HasPrefix(key, "tokens_") {
			tokens := sectionMap(values, "tokens")
			tokens[strings.ReplaceAll(strings.TrimPrefix(key, "tokens_"), "_", "-")] = value
			continue
		}
		values[key] = value
	}
}

func sectionMap(parent map[string]any, key string) map[string]any {
	if existing, ok := parent[key].(map[string]any); ok {
		return existing
	}
	created := map[string]any{}
	parent[key] = created
	return created
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("config: build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}
	return nil
}
