// Package vfs provides the file system seen by an editing session.
//
// Sessions only ever load or store whole files, so the interface is small.
// OSFS talks to the operating system; MemFS keeps everything in memory and
// backs the tests of packages that touch files.
package vfs

import (
	"io/fs"
)

// VFS is the file system used for reading and writing buffers.
type VFS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// FileInfo describes a file or directory.
type FileInfo struct {
	path  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path string, size int64, mode fs.FileMode, isDir bool) FileInfo {
	return FileInfo{path: path, size: size, mode: mode, isDir: isDir}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }
