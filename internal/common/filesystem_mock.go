package common

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDirPerm represents default directory permissions (rwxr-xr-x)
	DefaultDirPerm = 0o755

	// DefaultFilePerm represents default regular file permissions (rw-r--r--)
	DefaultFilePerm = 0o644

	// SymlinkPerm represents default symlink permissions (rwxrwxrwx)
	// In real system, permission of symlink is never used, but permission of
	// target file/directory is used for permission check on system calls.
	SymlinkPerm = 0o777
)

// MockFileSystem implements FileSystem for testing
type MockFileSystem struct {
	files map[string]*MockFileInfo
	// Symlinks maps symlink path to target path
	symlinks map[string]string
}

// MockFileInfo implements fs.FileInfo for testing
type MockFileInfo struct {
	name      string
	size      int64
	mode      os.FileMode
	modTime   time.Time
	isDir     bool
	isSymlink bool
}

// Name returns the base name of the file
func (m *MockFileInfo) Name() string { return m.name }

// Size returns the length in bytes
func (m *MockFileInfo) Size() int64 { return m.size }

// Mode returns the file mode bits
func (m *MockFileInfo) Mode() os.FileMode {
	if m.isSymlink {
		return m.mode | os.ModeSymlink
	}
	if m.isDir {
		return m.mode | os.ModeDir
	}
	return m.mode
}

// ModTime returns the modification time
func (m *MockFileInfo) ModTime() time.Time { return m.modTime }

// IsDir reports whether m describes a directory
func (m *MockFileInfo) IsDir() bool { return m.isDir }

// Sys returns the underlying data source (nil for mock)
func (m *MockFileInfo) Sys() any { return nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	fs := &MockFileSystem{
		files:    make(map[string]*MockFileInfo),
		symlinks: make(map[string]string),
	}

	// Add root directory by default
	fs.AddDir("/", DefaultDirPerm)

	return fs
}

// AddDir adds a directory to the mock filesystem
func (m *MockFileSystem) AddDir(path string, perm os.FileMode) {
	path = filepath.Clean(path)
	m.files[path] = &MockFileInfo{
		name:    filepath.Base(path),
		mode:    perm,
		modTime: time.Now(),
		isDir:   true,
	}
}

// AddFile adds a regular file to the mock filesystem
func (m *MockFileSystem) AddFile(path string, perm os.FileMode, size int64) {
	path = filepath.Clean(path)
	m.files[path] = &MockFileInfo{
		name:    filepath.Base(path),
		size:    size,
		mode:    perm,
		modTime: time.Now(),
	}
}

// AddSymlink adds a symbolic link to the mock filesystem
func (m *MockFileSystem) AddSymlink(path, target string) {
	path = filepath.Clean(path)
	m.files[path] = &MockFileInfo{
		name:      filepath.Base(path),
		mode:      SymlinkPerm,
		modTime:   time.Now(),
		isSymlink: true,
	}
	m.symlinks[path] = target
}

// Lstat returns file information without following symlinks
func (m *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)
	if info, ok := m.files[path]; ok {
		return info, nil
	}
	return nil, &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
}

// FileExists checks if a file or directory exists
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	path = filepath.Clean(path)
	_, ok := m.files[path]
	return ok, nil
}

// IsDir checks if the path is a directory
func (m *MockFileSystem) IsDir(path string) (bool, error) {
	path = filepath.Clean(path)
	info, ok := m.files[path]
	if !ok {
		return false, &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
	}
	return info.isDir, nil
}
