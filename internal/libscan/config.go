package libscan

import (
	"path/filepath"
	"runtime"

	"github.com/AlmAck/listMissingLibs/internal/common"
)

// Config carries the resolved scan configuration. Defaults are resolved
// once by the caller before construction; the scan itself never consults
// the environment.
type Config struct {
	// LibraryRoots are the directories searched for shared libraries.
	LibraryRoots []string

	// BinaryRoots are the directories searched for executables.
	BinaryRoots []string

	// Workers is the number of concurrent extraction workers. Values below
	// one select the number of CPUs.
	Workers int
}

// DefaultLibraryRoots returns the standard library search roots: /usr
// always, /opt when it is present. A present /opt that is not a directory
// is skipped later by the scanner.
func DefaultLibraryRoots(fsys common.FileSystem) []string {
	roots := []string{"/usr"}
	if exists, err := fsys.FileExists("/opt"); err == nil && exists {
		roots = append(roots, "/opt")
	}
	return roots
}

// BinaryRootsFromPath derives binary roots from a PATH-style value. Empty
// segments are dropped. When PATH is not set at all, /usr/bin is used.
func BinaryRootsFromPath(pathVar string, set bool) []string {
	if !set {
		return []string{"/usr/bin"}
	}

	var roots []string
	for _, p := range filepath.SplitList(pathVar) {
		if p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}

// normalized returns a copy of the config with cleaned, deduplicated roots
// and a concrete worker count.
func (c Config) normalized() Config {
	out := Config{
		LibraryRoots: normalizeRoots(c.LibraryRoots),
		BinaryRoots:  normalizeRoots(c.BinaryRoots),
		Workers:      c.Workers,
	}
	if out.Workers < 1 {
		out.Workers = runtime.NumCPU()
	}
	return out
}

// normalizeRoots cleans each root and drops duplicates, preserving first
// occurrence order.
func normalizeRoots(roots []string) []string {
	seen := make(map[string]struct{}, len(roots))
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == "" {
			continue
		}
		cleaned := filepath.Clean(root)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}
