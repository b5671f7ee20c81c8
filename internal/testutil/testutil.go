// Package testutil provides test helpers and fixtures for organizer tests.
// All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

// TestFixture holds a fake home directory and a working directory whose
// files get organized into it
type TestFixture struct {
	T       *testing.T
	RootDir string // Root temp directory (auto-cleaned)

	HomeDir string // destination root
	WorkDir string // directory being organized
}

// NewFixture creates a new test fixture with an empty home and work dir
func NewFixture(t *testing.T) *TestFixture {
	t.Helper()

	root := t.TempDir()

	f := &TestFixture{
		T:       t,
		RootDir: root,
		HomeDir: filepath.Join(root, "home"),
		WorkDir: filepath.Join(root, "desktop"),
	}

	for _, dir := range []string{f.HomeDir, f.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	return f
}

// =============================================================================
// File Creation Helpers
// =============================================================================

// CreateFile creates a file relative to the fixture root and returns its path
func (f *TestFixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateWorkFile creates a file in the working directory. The content is
// the file name, so moved files can be identified later.
func (f *TestFixture) CreateWorkFile(name string) string {
	f.T.Helper()
	return f.CreateFile(filepath.Join("desktop", name), []byte(name))
}

// CreateWorkFiles creates several files in the working directory
func (f *TestFixture) CreateWorkFiles(names ...string) {
	f.T.Helper()
	for _, name := range names {
		f.CreateWorkFile(name)
	}
}

// CreateHomeFile creates a file under the home directory
func (f *TestFixture) CreateHomeFile(relPath string, content []byte) string {
	f.T.Helper()
	return f.CreateFile(filepath.Join("home", relPath), content)
}

// =============================================================================
// Directory Helpers
// =============================================================================

// CreateDir creates a directory and returns its path
func (f *TestFixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateWorkDir creates a subdirectory of the working directory
func (f *TestFixture) CreateWorkDir(name string) string {
	f.T.Helper()
	return f.CreateDir(filepath.Join("desktop", name))
}

// CreateReadOnlyDir creates a read-only directory. Permissions are restored
// on cleanup so TempDir removal works.
func (f *TestFixture) CreateReadOnlyDir(relPath string) string {
	f.T.Helper()

	dirPath := f.CreateDir(relPath)
	if err := os.Chmod(dirPath, 0555); err != nil {
		f.T.Fatalf("failed to chmod directory %s: %v", dirPath, err)
	}

	f.T.Cleanup(func() {
		os.Chmod(dirPath, 0755)
	})

	return dirPath
}

// =============================================================================
// Symlink Helpers
// =============================================================================

// CreateSymlink creates a symbolic link relative to the fixture root
func (f *TestFixture) CreateSymlink(target, linkPath string) string {
	f.T.Helper()

	fullLinkPath := filepath.Join(f.RootDir, linkPath)
	dir := filepath.Dir(fullLinkPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.Symlink(target, fullLinkPath); err != nil {
		f.T.Fatalf("failed to create symlink %s -> %s: %v", fullLinkPath, target, err)
	}

	return fullLinkPath
}

// CreateBrokenSymlink creates a symlink pointing to a non-existent target
func (f *TestFixture) CreateBrokenSymlink(linkPath string) string {
	f.T.Helper()
	return f.CreateSymlink(filepath.Join(f.RootDir, "nonexistent", "target"), linkPath)
}

// =============================================================================
// Path Helpers
// =============================================================================

// Path returns the full path for a relative path within the fixture
func (f *TestFixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// WorkPath returns the path of name inside the working directory
func (f *TestFixture) WorkPath(name string) string {
	return filepath.Join(f.WorkDir, name)
}

// HomePath returns the path of name inside a folder of the home directory
func (f *TestFixture) HomePath(folder, name string) string {
	return filepath.Join(f.HomeDir, folder, name)
}

// =============================================================================
// Assertion Helpers
// =============================================================================

// FileExists checks if a file exists
func (f *TestFixture) FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// AssertFileExists fails the test if the file doesn't exist
func (f *TestFixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists
func (f *TestFixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// AssertFileContent fails if the file does not hold the expected content
func (f *TestFixture) AssertFileContent(path, expected string) {
	f.T.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		f.T.Errorf("failed to read %s: %v", path, err)
		return
	}
	if string(data) != expected {
		f.T.Errorf("file %s has content %q, want %q", path, data, expected)
	}
}

// AssertIsDir fails if path is not a directory
func (f *TestFixture) AssertIsDir(path string) {
	f.T.Helper()
	info, err := os.Stat(path)
	if err != nil {
		f.T.Errorf("failed to stat %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		f.T.Errorf("expected %s to be a directory", path)
	}
}

// ListNames returns the sorted entry names of dir
func (f *TestFixture) ListNames(dir string) []string {
	f.T.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		f.T.Fatalf("failed to read %s: %v", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Environment Helpers
// =============================================================================

// IsRoot returns true if running as root/admin
func IsRoot() bool {
	return os.Geteuid() == 0
}

// SkipIfRoot skips the test if running as root
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if IsRoot() {
		t.Skip("skipping test when running as root")
	}
}

// SkipOnWindows skips tests that rely on Unix permission bits or symlinks
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on windows")
	}
}
