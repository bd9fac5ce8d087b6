package vfs

import (
	"path/filepath"
	"testing"
)

func TestOSFS_RoundTrip(t *testing.T) {
	f := NewOSFS()
	path := filepath.Join(t.TempDir(), "buffer.txt")

	if f.Exists(path) {
		t.Fatal("file should not exist yet")
	}

	if err := f.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !f.Exists(path) {
		t.Error("file should exist")
	}

	content, err := f.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("content: got %q", content)
	}

	info, err := f.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 5 || info.IsDir() || info.Path() != path {
		t.Errorf("Stat: %+v", info)
	}
}

func TestOSFS_ReadMissing(t *testing.T) {
	f := NewOSFS()
	if _, err := f.ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error")
	}
}
