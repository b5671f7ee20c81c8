package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/logging"
)

// Scanner lists the entries directly inside a directory. It never recurses.
type Scanner struct {
	logger *slog.Logger
}

// New creates a new Scanner
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scanner{logger: logger}
}

// Scan lists dir. Symlinks are followed when deciding whether an entry is a
// regular file; entries that cannot be stat'ed are recorded in Errors and
// skipped. Failing to read dir itself is returned as an error.
func (s *Scanner) Scan(dir string) (*ScanResult, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", absDir, err)
	}

	result := &ScanResult{
		Dir:     absDir,
		Entries: make([]FileEntry, 0, len(dirEntries)),
	}

	for _, de := range dirEntries {
		path := filepath.Join(absDir, de.Name())

		info, err := de.Info()
		if err == nil && info.Mode()&os.ModeSymlink != 0 {
			info, err = os.Stat(path)
		}
		if err != nil {
			s.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			result.Errors = append(result.Errors, fmt.Errorf("stat %s: %w", path, err))
			continue
		}

		result.Entries = append(result.Entries, FileEntry{
			Path:      path,
			Name:      de.Name(),
			Ext:       Extension(de.Name()),
			IsRegular: info.Mode().IsRegular(),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	s.logger.Debug("scanned directory",
		"dir", absDir,
		"entries", len(result.Entries),
		"errors", len(result.Errors))

	return result, nil
}

// Extension returns the lowercase suffix of name: the text from the last
// dot, provided that dot is neither the first nor the last character.
// ".bashrc" and "notes." have no extension; "a.tar.gz" has ".gz".
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i:])
}
