package loader

import (
	"errors"
	"testing"

	"github.com/PaprikaX33/Uniedit/internal/vfs"
)

func TestForFile(t *testing.T) {
	memfs := vfs.NewMemFS()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/c.toml", false},
		{"/c.TOML", false},
		{"/c.yaml", false},
		{"/c.yml", false},
		{"/c.json", true},
		{"/c", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := ForFile(memfs, tt.path)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ForFile(%q) err = %v", tt.path, err)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"session": map[string]any{"prompt": ">>", "banner": false},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"session": map[string]any{"prompt": "$"},
		"files":   map[string]any{"permissions": "0600"},
	}

	merged := DeepMerge(dst, src)

	session := merged["session"].(map[string]any)
	if session["prompt"] != "$" || session["banner"] != false {
		t.Errorf("session = %v", session)
	}
	if merged["logging"].(map[string]any)["level"] != "info" {
		t.Error("logging should be untouched")
	}

	// The merged map must not alias src.
	merged["files"].(map[string]any)["permissions"] = "0644"
	if src["files"].(map[string]any)["permissions"] != "0600" {
		t.Error("DeepMerge aliased a map from src")
	}
}

func TestDeepMerge_NilDst(t *testing.T) {
	merged := DeepMerge(nil, map[string]any{"a": 1})
	if merged["a"] != 1 {
		t.Errorf("merged = %v", merged)
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{"session": map[string]any{"prompt": ">>"}}
	dst := Clone(src)
	dst["session"].(map[string]any)["prompt"] = "$"

	if src["session"].(map[string]any)["prompt"] != ">>" {
		t.Error("Clone did not copy nested maps")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
