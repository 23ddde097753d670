package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Common errors
var ErrEmptyLogDirectory = errors.New("log directory cannot be empty")

// File permission constants for per-run log files
const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600
)

// GenerateRunID generates a ULID for run identification. ULIDs sort
// lexicographically by creation time, so per-run log files list in
// chronological order.
func GenerateRunID() string {
	return ulid.Make().String()
}

// GenerateLogFilename builds the per-run log file path inside dir. The name
// embeds hostname, timestamp and run ID so concurrent runs writing to a
// shared log directory never collide.
func GenerateLogFilename(dir, runID string) string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	timestamp := time.Now().Format("20060102T150405Z")

	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s.json", hostname, timestamp, runID))
}

// ValidateLogDir ensures the log directory exists and is writable.
func ValidateLogDir(dir string) error {
	if dir == "" {
		return ErrEmptyLogDirectory
	}

	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	f, err := os.OpenFile(testFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return fmt.Errorf("cannot write to log directory %s: %w", dir, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close test file: %w", err)
	}
	if err := os.Remove(testFile); err != nil {
		return fmt.Errorf("failed to remove test file: %w", err)
	}

	return nil
}

// OpenLogFile opens the per-run log file for writing. The filename embeds a
// fresh run ID, so the file must not already exist.
func OpenLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return f, nil
}
