package loader

import (
	"errors"
	"testing"

	"github.com/PaprikaX33/Uniedit/internal/vfs"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/config.yaml", []byte(`
session:
  prompt: "%"
  banner: false
logging:
  level: debug
`))

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	session, ok := config["session"].(map[string]any)
	if !ok {
		t.Fatalf("expected session to be a map, got %T", config["session"])
	}
	if session["prompt"] != "%" || session["banner"] != false {
		t.Errorf("session = %v", session)
	}

	logging := config["logging"].(map[string]any)
	if logging["level"] != "debug" {
		t.Errorf("level = %v, want debug", logging["level"])
	}
}

func TestYAMLLoader_Missing(t *testing.T) {
	config, err := NewYAMLLoaderWithFS(vfs.NewMemFS(), "/nope.yml").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/bad.yaml", []byte("session: [unclosed\n"))

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}
