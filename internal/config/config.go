package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PaprikaX33/Uniedit/internal/config/loader"
)

// DefaultEnvPrefix is the prefix of environment variables read by Load.
const DefaultEnvPrefix = "UNIEDIT_"

// configFileNames are tried in order inside the user config directory.
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceBuiltin represents built-in default configuration.
	SourceBuiltin Source = iota
	// SourceFile represents a TOML or YAML configuration file.
	SourceFile
	// SourceEnv represents environment variables.
	SourceEnv
	// SourceFlags represents command-line flags and runtime overrides.
	SourceFlags
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// layer is one source of settings. Layers are kept in ascending priority.
type layer struct {
	source Source
	path   string
	data   map[string]any
}

// Config provides access to the merged uniedit configuration.
type Config struct {
	layers []*layer
	merged map[string]any

	// Sources
	fs            loader.FileSystem
	userConfigDir string
	configFile    string
	envPrefix     string
	environ       []string
	overrides     map[string]any
}

// Option configures a Config instance.
type Option func(*Config)

// WithUserConfigDir sets the directory searched for config.toml, config.yaml
// or config.yml.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithConfigFile names the configuration file explicitly. Unlike the
// user config directory, a missing explicit file is an error.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithFileSystem sets the file system configuration files are read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnviron reads environment settings from the given KEY=value list
// instead of the process environment.
func WithEnviron(environ []string) Option {
	return func(c *Config) {
		c.environ = environ
	}
}

// WithOverride sets a value in the flags layer, above every other source.
func WithOverride(path string, value any) Option {
	return func(c *Config) {
		if c.overrides == nil {
			c.overrides = make(map[string]any)
		}
		_ = setPath(c.overrides, path, value)
	}
}

// New creates a new Config instance with the given options.
// Only the built-in defaults are available until Load is called.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        loader.DefaultFS(),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}

	c.layers = []*layer{{source: SourceBuiltin, data: defaultConfig()}}
	return c
}

// Load loads configuration from all sources.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.layers = []*layer{{source: SourceBuiltin, data: defaultConfig()}}

	if err := c.loadFile(); err != nil {
		return err
	}

	if err := c.loadEnvironment(); err != nil {
		return err
	}

	flags := loader.Clone(c.overrides)
	if flags == nil {
		flags = make(map[string]any)
	}
	c.layers = append(c.layers, &layer{source: SourceFlags, data: flags})
	c.merged = nil
	return nil
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	return getPath(c.Merged(), path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// Set sets a value at the given path in the flags layer.
// Values set this way are dropped by the next Load; use WithOverride for
// values that must survive it.
func (c *Config) Set(path string, value any) error {
	top := c.layers[len(c.layers)-1]
	if top.source != SourceFlags {
		top = &layer{source: SourceFlags, data: make(map[string]any)}
		c.layers = append(c.layers, top)
	}

	if err := setPath(top.data, path, value); err != nil {
		return err
	}
	c.merged = nil
	return nil
}

// SourceOf reports which layer provides the effective value at path.
func (c *Config) SourceOf(path string) (Source, bool) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if _, ok := getPath(c.layers[i].data, path); ok {
			return c.layers[i].source, true
		}
	}
	return SourceBuiltin, false
}

// File returns the path of the loaded configuration file, if any.
func (c *Config) File() string {
	for _, l := range c.layers {
		if l.source == SourceFile {
			return l.path
		}
	}
	return ""
}

// Merged returns the fully merged configuration.
func (c *Config) Merged() map[string]any {
	if c.merged == nil {
		merged := make(map[string]any)
		for _, l := range c.layers {
			merged = loader.DeepMerge(merged, l.data)
		}
		c.merged = merged
	}
	return c.merged
}

// loadFile loads the explicit config file or the first one found in the
// user config directory.
func (c *Config) loadFile() error {
	if c.configFile != "" {
		data, err := c.loadFrom(c.configFile)
		if err != nil {
			return err
		}
		if data == nil {
			return fmt.Errorf("%w: %s", ErrFileNotFound, c.configFile)
		}
		c.layers = append(c.layers, &layer{source: SourceFile, path: c.configFile, data: data})
		return nil
	}

	for _, name := range configFileNames {
		path := filepath.Join(c.userConfigDir, name)
		data, err := c.loadFrom(path)
		if err != nil {
			return err
		}
		if data != nil {
			c.layers = append(c.layers, &layer{source: SourceFile, path: path, data: data})
			return nil
		}
	}
	return nil
}

func (c *Config) loadFrom(path string) (map[string]any, error) {
	l, err := loader.ForFile(c.fs, path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}

// loadEnvironment loads configuration from environment variables.
func (c *Config) loadEnvironment() error {
	envLoader := loader.NewEnvLoader(c.envPrefix)
	if c.environ != nil {
		envLoader = loader.NewEnvLoaderFrom(c.envPrefix, c.environ)
	}

	data, err := envLoader.Load()
	if err != nil {
		return err
	}
	if len(data) > 0 {
		c.layers = append(c.layers, &layer{source: SourceEnv, data: data})
	}
	return nil
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "uniedit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "uniedit")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"session": map[string]any{
			"prompt":     ">>",
			"showPrompt": "auto",
			"banner":     false,
		},
		"logging": map[string]any{
			"level": "warn",
			"file":  "",
		},
		"files": map[string]any{
			"permissions":  "0644",
			"readEncoding": "auto",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s is not a section", ErrInvalidPath, part)
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into its non-empty parts.
func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '.' {
			if i > start {
				parts = append(parts, path[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}

// isNotFound reports whether err is a missing-setting error.
func isNotFound(err error) bool {
	return errors.Is(err, ErrSettingNotFound)
}
