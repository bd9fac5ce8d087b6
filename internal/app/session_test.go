package app

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"slices"
	"strings"
	"testing"

	"github.com/PaprikaX33/Uniedit/internal/codec"
	"github.com/PaprikaX33/Uniedit/internal/engine"
	"github.com/PaprikaX33/Uniedit/internal/vfs"
)

// runSession runs input through a fresh session without a prompt and
// returns the session, its output and the Run error.
func runSession(t *testing.T, memfs *vfs.MemFS, input string, opts ...SessionOption) (*Session, string, error) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]SessionOption{WithPrompt("", false)}, opts...)
	s := NewSession(engine.New(), memfs, strings.NewReader(input), &out, opts...)
	err := s.Run(context.Background())
	return s, out.String(), err
}

func TestSession_Transcript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "append and print",
			input: "hello\n.p\n.px\n",
			want:  "[104, 101, 108, 108, 111]\n[68, 65, 6C, 6C, 6F]\n",
		},
		{
			name:  "render",
			input: "hi\n.r\n",
			want:  "hi\n",
		},
		{
			name:  "unknown command is trimmed",
			input: "  .z  \n",
			want:  "Unknown command .z\n",
		},
		{
			name:  "bad escape",
			input: "a\\qb\n.p\n",
			want:  "Unknown command a\\qb\n[]\n",
		},
		{
			name:  "valid and invalid",
			input: ".v\n.55296\n.v\n",
			want:  "Valid\nInvalid\n",
		},
		{
			name:  "out of range reported",
			input: "ab\n.k 5\n.p\n",
			want:  "Error: kill: position 5 out of range (length 2)\n[97, 98]\n",
		},
		{
			name:  "render failure reported",
			input: ".55296\n.r\n",
			want:  "Error: invalid code point 0xD800 at position 0\n",
		},
		{
			name:  "insert past end appends",
			input: "ab\n.i10 .99\n.p\n",
			want:  "[97, 98, 99]\n",
		},
		{
			name:  "quit stops processing",
			input: "a\n.q\n.p\n",
			want:  "",
		},
		{
			name:  "last line without newline",
			input: "a\n.p",
			want:  "[97]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, _ := runSession(t, vfs.NewMemFS(), tt.input)
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestSession_RunResult(t *testing.T) {
	if _, _, err := runSession(t, vfs.NewMemFS(), "a\n"); err != nil {
		t.Errorf("end of input should return nil, got %v", err)
	}
	if _, _, err := runSession(t, vfs.NewMemFS(), ".Q\n"); !errors.Is(err, ErrQuit) {
		t.Errorf("quit should return ErrQuit, got %v", err)
	}
	_, out, err := runSession(t, vfs.NewMemFS(), ".quit\n")
	if err != nil || out != "Unknown command .quit\n" {
		t.Errorf("quit with trailing text should be rejected, got %q, %v", out, err)
	}
}

func TestSession_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := NewSession(engine.New(), vfs.NewMemFS(), strings.NewReader("a\n"), &out)
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSession_Prompt(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(engine.New(), vfs.NewMemFS(), strings.NewReader(".p\n"), &out)
	_ = s.Run(context.Background())

	// Default prompt ">>" printed before each read, including the final one.
	if out.String() != ">>[]\n>>" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSession_Help(t *testing.T) {
	_, out, _ := runSession(t, vfs.NewMemFS(), ".h\n.?\n")
	if strings.Count(out, "Commands:") != 2 {
		t.Errorf("expected help twice, got %q", out)
	}
}

func TestSession_Write(t *testing.T) {
	tests := []struct {
		line string
		want []byte
	}{
		{".w /out.txt", []byte("hi")},
		{".w32 /out.txt", []byte{0, 0, 0xFE, 0xFF, 0, 0, 0, 'h', 0, 0, 0, 'i'}},
		{".W32LE /out.txt", []byte{0xFF, 0xFE, 0, 0, 'h', 0, 0, 0, 'i', 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			memfs := vfs.NewMemFS()
			_, out, _ := runSession(t, memfs, "hi\n"+tt.line+"\n", WithPermissions(0o600))
			if out != "" {
				t.Errorf("unexpected output %q", out)
			}

			got, err := memfs.ReadFile("/out.txt")
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("file = % X, want % X", got, tt.want)
			}

			info, _ := memfs.Stat("/out.txt")
			if info.Mode() != 0o600 {
				t.Errorf("mode = %v, want 0600", info.Mode())
			}
		})
	}
}

func TestSession_WritePathVerbatim(t *testing.T) {
	memfs := vfs.NewMemFS()
	_, _, _ = runSession(t, memfs, "x\n.w /my file.txt\n")

	if !memfs.Exists("/my file.txt") {
		t.Errorf("expected file with space in its name, have %v", memfs.Files())
	}
}

func TestSession_WriteFailures(t *testing.T) {
	memfs := vfs.NewMemFS()
	_, out, _ := runSession(t, memfs, ".55296\n.w /bad.txt\n.e\nok\n.w /nodir/x.txt\n")

	if memfs.Exists("/bad.txt") {
		t.Error("invalid buffer must not be written")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "Error: invalid code point") ||
		!strings.HasPrefix(lines[1], "Error: write /nodir/x.txt") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSession_Read(t *testing.T) {
	utf32le := append(codec.BOM(codec.UTF32LE), 'o', 0, 0, 0, 'k', 0, 0, 0)

	tests := []struct {
		name    string
		content []byte
		want    []uint32
	}{
		{"utf-8", []byte("héllo"), []uint32{'h', 0xE9, 'l', 'l', 'o'}},
		{"utf-8 bom", []byte("\xEF\xBB\xBFab"), []uint32{'a', 'b'}},
		{"utf-32le", utf32le, []uint32{'o', 'k'}},
		{"empty", nil, []uint32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memfs := vfs.NewMemFS()
			memfs.AddFile("/in", tt.content)

			s, out, _ := runSession(t, memfs, "old\n.o /in\n")
			if out != "" {
				t.Errorf("unexpected output %q", out)
			}
			if got := s.Engine().CodePoints(); !slices.Equal(got, tt.want) {
				t.Errorf("buffer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSession_ReadFailureKeepsBuffer(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/bad", []byte{'a', 0xFF})
	memfs.AddFile("/short", append(codec.BOM(codec.UTF32BE), 0, 0))

	for _, path := range []string{"/missing", "/bad", "/short"} {
		t.Run(path, func(t *testing.T) {
			s, out, _ := runSession(t, memfs, "keep\n.o "+path+"\n")
			if !strings.HasPrefix(out, "Error: read "+path) {
				t.Errorf("output = %q", out)
			}
			if got := s.Engine().CodePoints(); !slices.Equal(got, []uint32{'k', 'e', 'e', 'p'}) {
				t.Errorf("buffer changed to %v", got)
			}
		})
	}
}

func TestSession_ReadForcedEncoding(t *testing.T) {
	memfs := vfs.NewMemFS()
	// No byte-order mark: only a forced encoding reads this as UTF-32.
	memfs.AddFile("/in", []byte{0, 0, 0, 'A'})

	s, _, _ := runSession(t, memfs, ".o /in\n", WithReadEncoding(codec.UTF32BE))
	if got := s.Engine().CodePoints(); !slices.Equal(got, []uint32{'A'}) {
		t.Errorf("buffer = %v", got)
	}
}

func TestSession_WriteReadRoundTrip(t *testing.T) {
	for _, suffix := range []string{"", "32", "32le"} {
		t.Run("w"+suffix, func(t *testing.T) {
			memfs := vfs.NewMemFS()
			input := "x😀\\ty\n.w" + suffix + " /f\n.e\n.o /f\n.p\n"
			_, out, _ := runSession(t, memfs, input)
			if out != "[120, 128512, 9, 121]\n" {
				t.Errorf("output = %q", out)
			}
		})
	}
}

func TestSession_ReadOnly(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/in", []byte("new"))

	var out bytes.Buffer
	eng := engine.New(engine.WithContent([]uint32{'a'}), engine.WithReadOnly())
	s := NewSession(eng, memfs, strings.NewReader("b\n.o /in\n.w /out\n.p\n"), &out, WithPrompt("", false))
	_ = s.Run(context.Background())

	want := "Error: buffer is read-only\nError: buffer is read-only\n[97]\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if !memfs.Exists("/out") {
		t.Error("write should work on a read-only buffer")
	}
}

func TestSession_DebugStats(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &logs})

	_, out, _ := runSession(t, vfs.NewMemFS(), "e\\.\n.p\n", WithSessionLogger(logger))
	if out != "[101, 46]\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(logs.String(), "buffer changed {codePoints=2, graphemes=2, valid=true}") {
		t.Errorf("missing stats log, got:\n%s", logs.String())
	}
}

func TestSession_LoadMissing(t *testing.T) {
	memfs := vfs.NewMemFS()
	s := NewSession(engine.New(), memfs, strings.NewReader(""), &bytes.Buffer{})

	err := s.Load("/nope")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	var oe *OperationError
	if !errors.As(err, &oe) || oe.Op != "read" || oe.Target != "/nope" {
		t.Errorf("expected read OperationError, got %v", err)
	}
}

func TestSession_Metrics(t *testing.T) {
	s, _, _ := runSession(t, vfs.NewMemFS(), "a\n.z\n.k 9\n.p\n.q\n")

	m := s.Metrics()
	if m.Lines != 5 || m.Commands != 4 || m.Unknown != 1 || m.Failures != 1 {
		t.Errorf("Metrics() = %+v", m)
	}
}
