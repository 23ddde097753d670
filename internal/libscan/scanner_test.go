package libscan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoNamePattern(t *testing.T) {
	tests := []struct {
		name    string
		matches bool
	}{
		{"libfoo.so", true},
		{"libfoo.so.1", true},
		{"libfoo.so.1.2.3", true},
		{"libc-2.31.so", true},
		{"ld-linux-x86-64.so.2", true},
		{"libfoo.sock", false},
		{"libfoo.so.bak", false},
		{"libfoo.so.1x", false},
		{"libfoo.so.1.", false},
		{"libsomething", false},
		{"README", false},
		{"app.so.d", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, soNamePattern.MatchString(tt.name))
		})
	}
}

// collectCandidates gathers every candidate reported by a scan pass.
func collectCandidates(t *testing.T, scan func(VisitFunc) error) []Candidate {
	t.Helper()
	var got []Candidate
	require.NoError(t, scan(func(c Candidate) error {
		got = append(got, c)
		return nil
	}))
	return got
}

func TestScanner_ScanLibraryRoots(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "x86_64-linux-gnu")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	// Regular libraries, one nested
	require.NoError(t, os.WriteFile(filepath.Join(root, "libfoo.so.1"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "libbar.so"), []byte("x"), 0o644))

	// Non-matching files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tool.sock"), []byte("x"), 0o644))

	// Symlinks are reported with the Symlink flag, broken ones included
	require.NoError(t, os.Symlink(filepath.Join(root, "libfoo.so.1"), filepath.Join(root, "libfoo.so")))
	require.NoError(t, os.Symlink(filepath.Join(root, "does-not-exist"), filepath.Join(root, "libghost.so")))

	// A directory with a matching name is not a file, neither directly nor
	// through a symlink
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plugin.so"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "plugin.so"), filepath.Join(root, "libdirlink.so")))

	scanner := NewScanner()
	got := collectCandidates(t, func(visit VisitFunc) error {
		return scanner.ScanLibraryRoots(context.Background(), []string{root}, visit)
	})

	byBase := make(map[string]Candidate, len(got))
	for _, c := range got {
		byBase[c.Base] = c
	}

	require.Len(t, got, 4, "candidates: %+v", got)

	assert.False(t, byBase["libfoo.so.1"].Symlink)
	assert.Equal(t, filepath.Join(root, "libfoo.so.1"), byBase["libfoo.so.1"].Path)
	assert.False(t, byBase["libbar.so"].Symlink)
	assert.Equal(t, filepath.Join(sub, "libbar.so"), byBase["libbar.so"].Path)
	assert.True(t, byBase["libfoo.so"].Symlink)
	assert.True(t, byBase["libghost.so"].Symlink, "broken symlink still matches by name")

	assert.NotContains(t, byBase, "README")
	assert.NotContains(t, byBase, "tool.sock")
	assert.NotContains(t, byBase, "plugin.so")
	assert.NotContains(t, byBase, "libdirlink.so", "symlink to a directory is not a library file")
}

func TestScanner_ScanBinaryRoots(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "vendor")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, "app"), []byte("x"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "tool"), []byte("x"), 0o755))

	// Symlinks under binary roots are skipped entirely
	require.NoError(t, os.Symlink(filepath.Join(root, "app"), filepath.Join(root, "app-link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken-link")))

	scanner := NewScanner()
	got := collectCandidates(t, func(visit VisitFunc) error {
		return scanner.ScanBinaryRoots(context.Background(), []string{root}, visit)
	})

	paths := make([]string, len(got))
	for i, c := range got {
		paths[i] = c.Path
	}

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "app"),
		filepath.Join(sub, "tool"),
	}, paths)
}

func TestScanner_SkipsBadRoots(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "regular-file")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	scanner := NewScanner()

	// Missing and non-directory roots are skipped without error
	got := collectCandidates(t, func(visit VisitFunc) error {
		return scanner.ScanBinaryRoots(context.Background(), []string{
			filepath.Join(dir, "does-not-exist"),
			filePath,
		}, visit)
	})
	assert.Empty(t, got)
}

func TestScanner_SymlinkedRootIsWalked(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(filepath.Join(real, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(real, "libdeep.so.1"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(real, "sub", "tool"), []byte("x"), 0o755))

	// Roots like /bin are symlinks on merged-usr systems
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	scanner := NewScanner()

	libs := collectCandidates(t, func(visit VisitFunc) error {
		return scanner.ScanLibraryRoots(context.Background(), []string{link}, visit)
	})
	require.Len(t, libs, 1)
	assert.Equal(t, filepath.Join(link, "libdeep.so.1"), libs[0].Path,
		"paths are reported under the configured root, not the resolved one")
	assert.False(t, libs[0].Symlink)

	bins := collectCandidates(t, func(visit VisitFunc) error {
		return scanner.ScanBinaryRoots(context.Background(), []string{link}, visit)
	})
	paths := make([]string, len(bins))
	for i, c := range bins {
		paths[i] = c.Path
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(link, "libdeep.so.1"),
		filepath.Join(link, "sub", "tool"),
	}, paths)
}

func TestScanner_UnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are not enforced")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "visible"), []byte("x"), 0o644))

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	scanner := NewScanner()
	got := collectCandidates(t, func(visit VisitFunc) error {
		return scanner.ScanBinaryRoots(context.Background(), []string{root}, visit)
	})

	// The unreadable subtree is skipped, the rest of the root is still seen
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "visible"), got[0].Path)
}

func TestScanner_ContextCancellation(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app"), []byte("x"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewScanner()
	err := scanner.ScanBinaryRoots(ctx, []string{root}, func(Candidate) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_VisitErrorAborts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b"), []byte("x"), 0o644))

	errStop := errors.New("stop")
	var visited int

	scanner := NewScanner()
	err := scanner.ScanBinaryRoots(context.Background(), []string{root}, func(Candidate) error {
		visited++
		return errStop
	})

	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, visited, "scan should stop at the first visit error")
}
