package elfdeps

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// elfMagicStr is the ELF magic number string literal.
const elfMagicStr = "\x7fELF"

// elfMagic is the ELF magic number bytes.
var elfMagic = []byte(elfMagicStr)

// elfMagicLen is the number of bytes in the ELF magic number.
const elfMagicLen = len(elfMagicStr)

// maxFileSize is the maximum file size for dependency extraction (1 GB).
const maxFileSize = 1 << 30

// Static errors for result classification.
var (
	// ErrNotRegularFile indicates the file is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrFileTooLarge indicates the file exceeds the maximum size for extraction.
	ErrFileTooLarge = errors.New("file too large")
)

// StandardExtractor implements DependencyExtractor using Go's debug/elf package.
type StandardExtractor struct{}

// NewStandardExtractor creates a new StandardExtractor.
func NewStandardExtractor() *StandardExtractor {
	return &StandardExtractor{}
}

// ExtractDependencies implements the DependencyExtractor interface.
func (e *StandardExtractor) ExtractDependencies(path string) ExtractionOutput {
	// Step 1: Stat before opening so FIFOs and device nodes never block a
	// worker on open(2). Symlinks are followed, matching open semantics.
	fileInfo, err := os.Stat(path)
	if err != nil {
		return ExtractionOutput{
			Result: AccessDenied,
			Err:    fmt.Errorf("failed to stat file: %w", err),
		}
	}

	// Only regular files can be ELF objects
	if !fileInfo.Mode().IsRegular() {
		return ExtractionOutput{
			Result: NotELFObject,
			Err:    fmt.Errorf("%w: %s", ErrNotRegularFile, fileInfo.Mode()),
		}
	}

	// Check file size is reasonable
	if fileInfo.Size() > maxFileSize {
		return ExtractionOutput{
			Result: AccessDenied,
			Err:    fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, fileInfo.Size(), maxFileSize),
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return ExtractionOutput{
			Result: AccessDenied,
			Err:    fmt.Errorf("failed to open file: %w", err),
		}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("error closing file during dependency extraction", slog.Any("error", closeErr))
		}
	}()

	// Step 2: Check ELF magic number before full parsing
	magic := make([]byte, elfMagicLen)
	if _, err := io.ReadFull(file, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Shorter than the magic number, cannot be an ELF object
			return ExtractionOutput{Result: NotELFObject}
		}
		return ExtractionOutput{
			Result: AccessDenied,
			Err:    fmt.Errorf("failed to read magic number: %w", err),
		}
	}

	if !isELFMagic(magic) {
		return ExtractionOutput{Result: NotELFObject}
	}

	// Step 3: Parse ELF using debug/elf.NewFile. os.File implements
	// io.ReaderAt, so sections are read without re-opening the file.
	elfFile, err := elf.NewFile(file)
	if err != nil {
		// Correct magic number but unparseable content
		return ExtractionOutput{
			Result: NotELFObject,
			Err:    fmt.Errorf("failed to parse ELF: %w", err),
		}
	}
	defer func() {
		if closeErr := elfFile.Close(); closeErr != nil {
			slog.Warn("error closing ELF file during dependency extraction", slog.Any("error", closeErr))
		}
	}()

	// Step 4: Distinguish static objects before reading DT_NEEDED entries.
	// ImportedLibraries returns an empty list both for static objects and
	// for dynamic objects that require nothing, so the dynamic section
	// presence check must come first.
	if elfFile.SectionByType(elf.SHT_DYNAMIC) == nil {
		return ExtractionOutput{Result: StaticObject}
	}

	libraries, err := elfFile.ImportedLibraries()
	if err != nil {
		return ExtractionOutput{
			Result: NotELFObject,
			Err:    fmt.Errorf("failed to read dynamic section: %w", err),
		}
	}

	return ExtractionOutput{
		Result:    DynamicObject,
		Libraries: libraries,
	}
}

// isELFMagic checks if the given bytes match the ELF magic number.
func isELFMagic(magic []byte) bool {
	if len(magic) < elfMagicLen {
		return false
	}
	return bytes.Equal(magic[:elfMagicLen], elfMagic)
}
