package config

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/PaprikaX33/Uniedit/internal/vfs"
)

func TestConfig_SectionDefaults(t *testing.T) {
	c := newTestConfig(vfs.NewMemFS())
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	session := c.Session()
	if session.Prompt != ">>" || session.ShowPrompt != PromptAuto || session.Banner {
		t.Errorf("Session() = %+v", session)
	}

	logging := c.Logging()
	if logging.Level != "warn" || logging.File != "" {
		t.Errorf("Logging() = %+v", logging)
	}

	files := c.Files()
	if files.Permissions != 0o644 || files.ReadEncoding != "auto" {
		t.Errorf("Files() = %+v", files)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestConfig_SectionsFromFile(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/cfg/config.toml", []byte(`
[session]
prompt = ""
showPrompt = "NEVER"
banner = true

[logging]
file = "/tmp/uniedit.log"

[files]
permissions = "600"
readEncoding = "UTF-32LE"
`))

	c := newTestConfig(memfs)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	session := c.Session()
	if session.Prompt != "" || session.ShowPrompt != PromptNever || !session.Banner {
		t.Errorf("Session() = %+v", session)
	}
	if c.Logging().File != "/tmp/uniedit.log" {
		t.Errorf("Logging().File = %q", c.Logging().File)
	}

	files := c.Files()
	if files.Permissions != fs.FileMode(0o600) {
		t.Errorf("Permissions = %v, want 0600", files.Permissions)
	}
	if files.ReadEncoding != "utf-32le" {
		t.Errorf("ReadEncoding = %q, want utf-32le", files.ReadEncoding)
	}
}

func TestConfig_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    fs.FileMode
		wantErr error
	}{
		{"octal string", "0640", 0o640, nil},
		{"toml integer", int64(0o600), 0o600, nil},
		{"yaml integer", 420, 0o644, nil},
		{"not octal", "0899", 0, ErrValidationFailed},
		{"too large", "1777", 0, ErrValidationFailed},
		{"negative", int64(-1), 0, ErrValidationFailed},
		{"wrong type", true, 0, ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConfig(vfs.NewMemFS())
			if err := c.Set("files.permissions", tt.value); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			err := c.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
				if c.Files().Permissions != 0o644 {
					t.Error("invalid permissions should fall back to 0644")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if got := c.Files().Permissions; got != tt.want {
				t.Errorf("Permissions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_ValidateShowPrompt(t *testing.T) {
	c := newTestConfig(vfs.NewMemFS())
	_ = c.Set("session.showPrompt", "sometimes")

	err := c.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Path != "session.showPrompt" {
		t.Errorf("Path = %q", ve.Path)
	}
}

func TestConfig_ValidateTypes(t *testing.T) {
	tests := []struct {
		path  string
		value any
	}{
		{"session.prompt", int64(3)},
		{"logging.level", true},
		{"session.banner", "yes please"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := newTestConfig(vfs.NewMemFS())
			_ = c.Set(tt.path, tt.value)
			if err := c.Validate(); !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("expected ErrTypeMismatch, got %v", err)
			}
		})
	}
}
