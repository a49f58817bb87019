package datacheck

import (
	"io"
	"io/fs"
	"os"
	"time"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Open opens the file for reading.
func (r *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: reading course data files
}

// mockFileSystem is a test double for FileSystem.
type mockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
	OpenFunc func(name string) (io.ReadCloser, error)
}

// Stat calls the mock function.
func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// Open calls the mock function.
func (m *mockFileSystem) Open(name string) (io.ReadCloser, error) {
	return m.OpenFunc(name)
}

// mockFileInfo is a test double for fs.FileInfo.
type mockFileInfo struct {
	NameValue  string
	SizeValue  int64
	ModeValue  fs.FileMode
	IsDirValue bool
}

func (m *mockFileInfo) Name() string       { return m.NameValue }
func (m *mockFileInfo) Size() int64        { return m.SizeValue }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *mockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *mockFileInfo) Sys() interface{}   { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
