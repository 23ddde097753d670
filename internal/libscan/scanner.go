package libscan

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// soNamePattern matches shared object file names: a .so suffix optionally
// followed by dotted version components, anchored at the end of the name.
// Matches "libfoo.so", "libfoo.so.1" and "libfoo.so.1.2.3" but not
// "libfoo.sock" or "libfoo.so.bak".
var soNamePattern = regexp.MustCompile(`\.so(\.\d+)*$`)

// Candidate is a file encountered during a scan pass.
type Candidate struct {
	// Path is the file path as reachable from the scanned root.
	Path string

	// Base is the file's base name, used for availability matching.
	Base string

	// Symlink reports whether the directory entry is a symbolic link.
	Symlink bool
}

// VisitFunc receives candidates during a scan. Returning an error aborts
// the scan.
type VisitFunc func(c Candidate) error

// Scanner walks root directories and reports candidate files. Missing
// roots, non-directory roots and unreadable subdirectories are skipped
// without aborting the scan.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanLibraryRoots reports every file under roots whose name matches the
// shared object pattern, symlinks included.
func (s *Scanner) ScanLibraryRoots(ctx context.Context, roots []string, visit VisitFunc) error {
	for _, root := range roots {
		err := s.walkRoot(ctx, root, func(c Candidate) error {
			if !soNamePattern.MatchString(c.Base) {
				return nil
			}
			if c.Symlink {
				// A symlink resolving to a directory is not a library file
				if info, err := os.Stat(c.Path); err == nil && info.IsDir() {
					return nil
				}
			}
			return visit(c)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ScanBinaryRoots reports every non-directory file under roots. Symlinks
// are skipped entirely, broken or not.
func (s *Scanner) ScanBinaryRoots(ctx context.Context, roots []string, visit VisitFunc) error {
	for _, root := range roots {
		err := s.walkRoot(ctx, root, func(c Candidate) error {
			if c.Symlink {
				return nil
			}
			return visit(c)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// walkRoot walks a single root, passing every non-directory entry to visit.
func (s *Scanner) walkRoot(ctx context.Context, root string, visit VisitFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		slog.Debug("skipping missing scan root", "root", root, "error", err)
		return nil
	}
	if !info.IsDir() {
		slog.Debug("skipping non-directory scan root", "root", root)
		return nil
	}

	// WalkDir does not descend through a symlinked root. Roots like /bin
	// are symlinks on merged-usr systems, so walk the resolved directory
	// and report paths under the configured root name.
	target := root
	if lst, lerr := os.Lstat(root); lerr == nil && lst.Mode()&fs.ModeSymlink != 0 {
		resolved, rerr := filepath.EvalSymlinks(root)
		if rerr != nil {
			slog.Debug("skipping unresolvable scan root", "root", root, "error", rerr)
			return nil
		}
		target = resolved
	}

	return filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories do not abort the scan
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		reported := path
		if target != root {
			reported = filepath.Join(root, strings.TrimPrefix(path, target))
		}
		return visit(Candidate{
			Path:    reported,
			Base:    d.Name(),
			Symlink: d.Type()&fs.ModeSymlink != 0,
		})
	})
}
