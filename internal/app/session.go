package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/PaprikaX33/Uniedit/internal/codec"
	"github.com/PaprikaX33/Uniedit/internal/command"
	"github.com/PaprikaX33/Uniedit/internal/engine"
	"github.com/PaprikaX33/Uniedit/internal/vfs"
)

// Session is the read-execute-print loop over one engine.
type Session struct {
	engine  *engine.Engine
	fs      vfs.VFS
	logger  *Logger
	metrics *Metrics

	in  *bufio.Reader
	out io.Writer

	prompt     string
	showPrompt bool
	perm       fs.FileMode

	// readEncoding is used for read commands when autoDetect is false.
	autoDetect   bool
	readEncoding codec.Encoding
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPrompt sets the prompt printed before each line. An empty prompt
// or show set to false prints nothing.
func WithPrompt(prompt string, show bool) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
		s.showPrompt = show
	}
}

// WithSessionLogger sets the logger.
func WithSessionLogger(l *Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithPermissions sets the mode of files created by write commands.
func WithPermissions(perm fs.FileMode) SessionOption {
	return func(s *Session) {
		s.perm = perm
	}
}

// WithReadEncoding forces the decoding used by read commands.
// Without it the encoding is detected from the byte-order mark.
func WithReadEncoding(enc codec.Encoding) SessionOption {
	return func(s *Session) {
		s.autoDetect = false
		s.readEncoding = enc
	}
}

// NewSession creates a session reading commands from in and writing
// results to out.
func NewSession(eng *engine.Engine, fsys vfs.VFS, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		engine:     eng,
		fs:         fsys,
		logger:     NullLogger,
		metrics:    NewMetrics(),
		in:         bufio.NewReader(in),
		out:        out,
		prompt:     ">>",
		showPrompt: true,
		perm:       0o644,
		autoDetect: true,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the engine the session drives.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Metrics returns what the session has processed so far.
func (s *Session) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Run reads and executes lines until input ends or a quit command.
// End of input returns nil; a quit command returns ErrQuit.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.showPrompt && s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}

		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return NewOperationError("read", "input", readErr)
		}
		if readErr != nil && line == "" {
			s.logger.Debug("end of input")
			return nil
		}

		if err := s.Execute(line); err != nil {
			return err
		}
		if readErr != nil {
			return nil
		}
	}
}

// Execute runs one input line and prints its result. Command failures are
// reported on the output and do not end the session; only quit returns an
// error.
func (s *Session) Execute(line string) error {
	cmd, ok := command.Parse(line)
	if !ok {
		s.metrics.RecordLine(false, nil, 0)
		fmt.Fprintf(s.out, "Unknown command %s\n", strings.TrimSpace(line))
		return nil
	}
	s.logger.Debug("execute %s", cmd)

	timer := StartTimer()
	var err error
	switch cmd.Kind {
	case command.KindQuit:
		s.metrics.RecordLine(true, nil, 0)
		return ErrQuit
	case command.KindHelp:
		_, err = io.WriteString(s.out, HelpText())
	case command.KindWrite:
		err = s.Save(cmd.Path, cmd.Encoding)
	case command.KindRead:
		err = s.Load(cmd.Path)
	default:
		err = s.apply(cmd)
	}
	s.metrics.RecordLine(true, err, timer.Elapsed())

	if err != nil {
		s.logger.Debug("%s failed: %v", cmd.Kind, err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	if cmd.Kind.Mutates() && s.logger.Enabled(LogLevelDebug) {
		st := s.engine.Stats()
		s.logger.WithFields(map[string]any{
			"codePoints": st.CodePoints,
			"graphemes":  st.Graphemes,
			"valid":      st.Valid,
		}).Debug("buffer changed")
	}
	return nil
}

// apply runs a buffer command on the engine and prints what it produced.
func (s *Session) apply(cmd command.Command) error {
	out, err := s.engine.Apply(cmd)
	if err != nil {
		return err
	}

	switch {
	case out.Text != "":
		fmt.Fprintln(s.out, out.Text)
	case cmd.Kind == command.KindRender:
		if _, err := s.out.Write(out.Data); err != nil {
			return NewOperationError("render", "output", err)
		}
		fmt.Fprintln(s.out)
	}
	return nil
}

// Save encodes the buffer and writes it to path.
// Nothing is written when the buffer does not render.
func (s *Session) Save(path string, enc codec.Encoding) error {
	data, err := s.engine.Encode(enc)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(path, data, s.perm); err != nil {
		return NewOperationError("write", path, err)
	}

	s.logger.WithFields(map[string]any{"path": path, "encoding": enc, "bytes": len(data)}).Info("buffer written")
	return nil
}

// Load replaces the buffer with the decoded contents of path.
// The buffer is unchanged when the file cannot be read or decoded.
func (s *Session) Load(path string) error {
	if s.engine.IsReadOnly() {
		return engine.ErrReadOnly
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return NewOperationError("read", path, err)
	}

	var (
		values []uint32
		enc    = s.readEncoding
	)
	if s.autoDetect {
		values, enc, err = codec.DecodeAuto(content)
	} else {
		values, err = codec.Decode(content, enc)
	}
	if err != nil {
		return NewOperationError("read", path, err)
	}

	if err := s.engine.Replace(values); err != nil {
		return err
	}

	s.logger.WithFields(map[string]any{"path": path, "encoding": enc, "codePoints": len(values)}).Info("buffer read")
	return nil
}
