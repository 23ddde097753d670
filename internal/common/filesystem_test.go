//nolint:revive // common is an appropriate name for shared utilities package
package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFileSystem_FileExists(t *testing.T) {
	fs := NewDefaultFileSystem()

	// Test with non-existent file
	exists, err := fs.FileExists("/non/existent/path")
	assert.NoError(t, err, "FileExists failed for non-existent path")
	assert.False(t, exists, "Non-existent file reported as existing")

	// Test with existing directory
	tempDir := t.TempDir()
	exists, err = fs.FileExists(tempDir)
	assert.NoError(t, err, "FileExists failed for existing path")
	assert.True(t, exists, "Existing directory reported as non-existent")
}

func TestDefaultFileSystem_IsDir(t *testing.T) {
	fs := NewDefaultFileSystem()
	tempDir := t.TempDir()

	isDir, err := fs.IsDir(tempDir)
	assert.NoError(t, err, "IsDir failed for directory")
	assert.True(t, isDir, "Directory not reported as directory")

	filePath := filepath.Join(tempDir, "regular.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0o644), "Failed to create test file")

	isDir, err = fs.IsDir(filePath)
	assert.NoError(t, err, "IsDir failed for regular file")
	assert.False(t, isDir, "Regular file reported as directory")

	_, err = fs.IsDir(filepath.Join(tempDir, "missing"))
	assert.Error(t, err, "IsDir should fail for non-existent path")
}

func TestDefaultFileSystem_Lstat(t *testing.T) {
	fs := NewDefaultFileSystem()
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "target.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0o644), "Failed to create test file")

	linkPath := filepath.Join(tempDir, "link.txt")
	require.NoError(t, os.Symlink(filePath, linkPath), "Failed to create symlink")

	// Lstat must not follow the symlink
	info, err := fs.Lstat(linkPath)
	assert.NoError(t, err, "Lstat failed for symlink")
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "Lstat followed the symlink")

	info, err = fs.Lstat(filePath)
	assert.NoError(t, err, "Lstat failed for regular file")
	assert.True(t, info.Mode().IsRegular(), "Regular file not reported as regular")
}

func TestMockFileSystem_Basics(t *testing.T) {
	fs := NewMockFileSystem()
	fs.AddDir("/usr/lib", DefaultDirPerm)
	fs.AddFile("/usr/lib/libfoo.so.1", DefaultFilePerm, 1024)
	fs.AddSymlink("/usr/lib/libfoo.so", "/usr/lib/libfoo.so.1")

	exists, err := fs.FileExists("/usr/lib/libfoo.so.1")
	assert.NoError(t, err)
	assert.True(t, exists, "Added file reported as non-existent")

	exists, err = fs.FileExists("/usr/lib/libbar.so")
	assert.NoError(t, err)
	assert.False(t, exists, "Missing file reported as existing")

	isDir, err := fs.IsDir("/usr/lib")
	assert.NoError(t, err)
	assert.True(t, isDir, "Added directory not reported as directory")

	isDir, err = fs.IsDir("/usr/lib/libfoo.so.1")
	assert.NoError(t, err)
	assert.False(t, isDir, "Regular file reported as directory")

	info, err := fs.Lstat("/usr/lib/libfoo.so")
	assert.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "Symlink mode bit missing")

	info, err = fs.Lstat("/usr/lib/libfoo.so.1")
	assert.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "Regular file mode incorrect")
	assert.Equal(t, int64(1024), info.Size(), "File size mismatch")

	_, err = fs.Lstat("/usr/lib/libbar.so")
	assert.ErrorIs(t, err, os.ErrNotExist, "Lstat on missing path should return ErrNotExist")
}

func TestFileSystemInterfaces(t *testing.T) {
	// Both implementations must satisfy the FileSystem interface
	var _ FileSystem = NewDefaultFileSystem()
	var _ FileSystem = NewMockFileSystem()
}
