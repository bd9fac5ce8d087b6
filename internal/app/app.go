package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/PaprikaX33/Uniedit/internal/codec"
	"github.com/PaprikaX33/Uniedit/internal/config"
	"github.com/PaprikaX33/Uniedit/internal/engine"
	"github.com/PaprikaX33/Uniedit/internal/vfs"
)

// Application owns the components of one uniedit run.
type Application struct {
	config  *config.Config
	logger  *Logger
	fs      vfs.VFS
	engine  *engine.Engine
	session *Session

	sessionID string
	logFile   io.Closer
	closed    bool

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// ConfigDir overrides the directory searched for a configuration file.
	ConfigDir string

	// File is loaded into the buffer before the first command.
	File string

	// LogLevel overrides the configured logging level when set.
	LogLevel string

	// ReadOnly rejects every command that changes the buffer.
	ReadOnly bool

	// Version is shown in the startup banner.
	Version string

	// Environ replaces the process environment for configuration.
	Environ []string

	// FS is the file system for buffers and configuration. Defaults to the OS.
	FS vfs.VFS

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{
		opts:      opts,
		fs:        opts.FS,
		sessionID: uuid.NewString(),
	}

	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	configOpts := []config.Option{config.WithFileSystem(app.fs)}
	if app.opts.ConfigPath != "" {
		configOpts = append(configOpts, config.WithConfigFile(app.opts.ConfigPath))
	}
	if app.opts.ConfigDir != "" {
		configOpts = append(configOpts, config.WithUserConfigDir(app.opts.ConfigDir))
	}
	if app.opts.Environ != nil {
		configOpts = append(configOpts, config.WithEnviron(app.opts.Environ))
	}
	if app.opts.LogLevel != "" {
		configOpts = append(configOpts, config.WithOverride("logging.level", app.opts.LogLevel))
	}

	app.config = config.New(configOpts...)
	if err := app.config.Load(context.Background()); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := app.config.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	if file := app.config.File(); file != "" {
		app.logger.Info("loaded config from %s", file)
	}

	// 3. Engine
	var engineOpts []engine.Option
	if app.opts.ReadOnly {
		engineOpts = append(engineOpts, engine.WithReadOnly())
	}
	app.engine = engine.New(engineOpts...)

	// 4. Session
	sessionOpts, err := app.sessionOptions()
	if err != nil {
		return &InitError{Component: "session", Err: err}
	}
	app.session = NewSession(app.engine, app.fs, app.opts.Stdin, app.opts.Stdout, sessionOpts...)

	return nil
}

// initLogger builds the logger from the logging section.
func (app *Application) initLogger() error {
	cfg := app.config.Logging()

	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return err
	}

	var output io.Writer = app.opts.Stderr
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		app.logFile = f
		output = f
	}

	app.logger = NewLogger(LoggerConfig{
		Level:  level,
		Output: output,
		Prefix: "uniedit",
	}).WithField("session", app.sessionID)
	return nil
}

// sessionOptions translates the session and files sections.
func (app *Application) sessionOptions() ([]SessionOption, error) {
	sess := app.config.Session()
	files := app.config.Files()

	opts := []SessionOption{
		WithPrompt(sess.Prompt, promptVisible(sess.ShowPrompt, app.opts.Stdin)),
		WithSessionLogger(app.logger.WithComponent("session")),
		WithPermissions(files.Permissions),
	}

	if files.ReadEncoding != "auto" {
		enc, err := codec.ParseEncoding(files.ReadEncoding)
		if err != nil {
			return nil, fmt.Errorf("files.readEncoding: %w", err)
		}
		opts = append(opts, WithReadEncoding(enc))
	}
	return opts, nil
}

// promptVisible resolves the showPrompt mode. In auto mode the prompt is
// shown only when in is a terminal.
func promptVisible(mode string, in io.Reader) bool {
	switch mode {
	case config.PromptAlways:
		return true
	case config.PromptNever:
		return false
	}

	f, ok := in.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run loads the startup file, if any, and runs the session until input
// ends or a quit command. A quit command returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	app.logger.Info("session started")

	if app.config.Session().Banner {
		version := app.opts.Version
		if version == "" {
			version = "dev"
		}
		fmt.Fprintf(app.opts.Stdout, "uniedit %s. Type .h for help.\n", version)
	}

	if app.opts.File != "" {
		if err := app.session.Load(app.opts.File); err != nil {
			app.logger.Warn("startup file: %v", err)
			fmt.Fprintf(app.opts.Stdout, "Error: %v\n", err)
		}
	}

	err := app.session.Run(ctx)
	app.logger.WithFields(app.session.Metrics().Fields()).Info("session ended")
	return err
}

// Shutdown releases resources. It is safe to call more than once.
func (app *Application) Shutdown() {
	if app.closed {
		return
	}
	app.closed = true

	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the buffer engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Session returns the interactive session.
func (app *Application) Session() *Session {
	return app.session
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// SessionID returns the identifier attached to every log line.
func (app *Application) SessionID() string {
	return app.sessionID
}
