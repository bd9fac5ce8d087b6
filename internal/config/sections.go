package config

import (
	"io/fs"
	"strconv"
	"strings"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// Prompt visibility modes for session.showPrompt.
const (
	PromptAuto   = "auto"
	PromptAlways = "always"
	PromptNever  = "never"
)

// SessionConfig provides type-safe access to the interactive session settings.
type SessionConfig struct {
	// Prompt is printed before each input line.
	Prompt string

	// ShowPrompt controls prompt printing ("auto", "always", "never").
	// "auto" prints it only when standard input is a terminal.
	ShowPrompt string

	// Banner prints a one-line greeting with the help hint at startup.
	Banner bool
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string

	// File receives log output. Empty means standard error.
	File string
}

// FilesConfig provides type-safe access to file handling settings.
type FilesConfig struct {
	// Permissions is the mode given to files created by write commands.
	Permissions fs.FileMode

	// ReadEncoding forces the decoding of read commands ("auto" sniffs
	// the byte-order mark).
	ReadEncoding string
}

// Session returns the session configuration section.
func (c *Config) Session() SessionConfig {
	return SessionConfig{
		Prompt:     c.getStringOr("session.prompt", ">>"),
		ShowPrompt: strings.ToLower(c.getStringOr("session.showPrompt", PromptAuto)),
		Banner:     c.getBoolOr("session.banner", false),
	}
}

// Logging returns the logging configuration section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "warn"),
		File:  c.getStringOr("logging.file", ""),
	}
}

// Files returns the files configuration section.
// An unparsable permissions value falls back to 0644; Validate reports it.
func (c *Config) Files() FilesConfig {
	perm, err := c.permissions()
	if err != nil {
		perm = 0o644
	}
	return FilesConfig{
		Permissions:  perm,
		ReadEncoding: strings.ToLower(c.getStringOr("files.readEncoding", "auto")),
	}
}

// stringSettings must hold strings when present.
var stringSettings = []string{
	"session.prompt",
	"session.showPrompt",
	"logging.level",
	"logging.file",
	"files.readEncoding",
}

// Validate checks setting types and the settings whose values are restricted.
func (c *Config) Validate() error {
	for _, path := range stringSettings {
		if _, err := c.GetString(path); err != nil && !isNotFound(err) {
			return err
		}
	}
	if _, err := c.GetBool("session.banner"); err != nil && !isNotFound(err) {
		return err
	}

	switch mode := c.Session().ShowPrompt; mode {
	case PromptAuto, PromptAlways, PromptNever:
	default:
		return &ValidationError{
			Path:    "session.showPrompt",
			Message: "must be auto, always or never",
			Value:   mode,
		}
	}

	if _, err := c.permissions(); err != nil {
		return err
	}
	return nil
}

// permissions reads files.permissions. Strings are octal ("0644");
// integers are taken as the mode value itself (TOML 0o644).
func (c *Config) permissions() (fs.FileMode, error) {
	v, ok := c.Get("files.permissions")
	if !ok {
		return 0o644, nil
	}

	invalid := &ValidationError{
		Path:    "files.permissions",
		Message: "must be an octal mode between 0000 and 0777",
		Value:   v,
	}

	var mode uint64
	switch val := v.(type) {
	case string:
		n, err := strconv.ParseUint(val, 8, 32)
		if err != nil {
			return 0, invalid
		}
		mode = n
	case int64:
		if val < 0 {
			return 0, invalid
		}
		mode = uint64(val)
	case int:
		if val < 0 {
			return 0, invalid
		}
		mode = uint64(val)
	default:
		return 0, &TypeError{Path: "files.permissions", Expected: "string", Actual: typeName(v)}
	}

	if mode > 0o777 {
		return 0, invalid
	}
	return fs.FileMode(mode), nil
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		return defaultValue
	}
	return v
}
