package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/logging"
	"github.com/fenilsonani/file-organizer/internal/scanner"
	"github.com/fenilsonani/file-organizer/internal/security"
)

// Options configures a Mover
type Options struct {
	Root          string // destination root, normally the home directory
	Overwrite     bool
	DryRun        bool
	ReservedChars string
	// CaseInsensitive makes paths differing only in case refer to the
	// same file, as on the default macOS and Windows filesystems
	CaseInsensitive bool
	Logger          *slog.Logger
}

// renameFile is os.Rename, swapped out by tests to force a cross-device move
var renameFile = os.Rename

// Result is the outcome of a single move attempt
type Result struct {
	Source      string
	Destination string
	Folder      string
	Size        int64
	Moved       bool
	Unchanged   bool // source already sits at the destination
	Replaced    bool // an existing destination file was overwritten
	DryRun      bool
	Err         *MoveError
}

// OK reports whether the move succeeded (or would succeed in a dry run)
func (r Result) OK() bool {
	return r.Err == nil
}

// Mover provisions folders directly under its root and moves files into
// them. It is not safe for concurrent use.
type Mover struct {
	root            string
	overwrite       bool
	dryRun          bool
	caseInsensitive bool
	validator       *security.PathValidator
	logger          *slog.Logger
}

// New creates a new Mover
func New(opts Options) *Mover {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Mover{
		root:            filepath.Clean(opts.Root),
		overwrite:       opts.Overwrite,
		dryRun:          opts.DryRun,
		caseInsensitive: opts.CaseInsensitive,
		validator:       security.NewPathValidator(opts.ReservedChars),
		logger:          logger,
	}
}

// Root returns the destination root
func (m *Mover) Root() string {
	return m.root
}

// DryRun reports whether the mover only simulates changes
func (m *Mover) DryRun() bool {
	return m.dryRun
}

// FolderPath returns the absolute path of a destination folder
func (m *Mover) FolderPath(name string) string {
	return filepath.Join(m.root, name)
}

// EnsureCategoryFolders creates one folder per category of the table
func (m *Mover) EnsureCategoryFolders(table *category.Table) error {
	for _, name := range table.Names() {
		if err := m.EnsureFolder(name); err != nil {
			return err
		}
	}
	return nil
}

// EnsureFolder creates the named folder directly under the root. An existing
// folder is left untouched; intermediate directories are never created.
func (m *Mover) EnsureFolder(name string) error {
	path := m.FolderPath(name)

	if err := m.validator.ValidateFolderName(name); err != nil {
		return &MoveError{Op: "mkdir", Path: path, Reason: ErrorInvalidPath, Original: err}
	}

	if m.dryRun {
		m.logger.Debug("dry run: would ensure folder", "path", path)
		return nil
	}

	err := os.Mkdir(path, 0755)
	if err == nil {
		m.logger.Info("created folder", "path", path)
		return nil
	}

	if errors.Is(err, fs.ErrExist) {
		info, statErr := os.Stat(path)
		if statErr != nil {
			return CategorizeError("mkdir", path, "", statErr)
		}
		if !info.IsDir() {
			return &MoveError{
				Op:       "mkdir",
				Path:     path,
				Reason:   ErrorInvalidPath,
				Original: fmt.Errorf("%s exists and is not a directory", path),
			}
		}
		return nil
	}

	return CategorizeError("mkdir", path, "", err)
}

// Move moves entry into folder, keeping its base name. Failures are
// reported in the result, never panicked or returned separately, so a batch
// can carry on with the next file.
func (m *Mover) Move(entry scanner.FileEntry, folder string) Result {
	dest := filepath.Join(m.FolderPath(folder), entry.Name)
	result := Result{
		Source:      entry.Path,
		Destination: dest,
		Folder:      folder,
		Size:        entry.Size,
		DryRun:      m.dryRun,
	}

	if err := m.validator.ValidateFolderName(folder); err != nil {
		result.Err = CategorizeError("move", entry.Path, dest, err)
		return result
	}
	if err := security.ValidateWithin(m.root, dest); err != nil {
		result.Err = &MoveError{Op: "move", Path: entry.Path, Dest: dest, Reason: ErrorInvalidPath, Original: err}
		return result
	}

	if m.samePath(entry.Path, dest) {
		result.Unchanged = true
		return result
	}

	replaced, err := m.checkDestination(dest)
	if err != nil {
		result.Err = CategorizeError("move", entry.Path, dest, err)
		return result
	}
	result.Replaced = replaced

	if m.dryRun {
		result.Moved = true
		m.logger.Debug("dry run: would move file", "source", entry.Path, "destination", dest)
		return result
	}

	if err := m.rename(entry.Path, dest); err != nil {
		result.Err = CategorizeError("move", entry.Path, dest, err)
		m.logger.Warn("move failed", "source", entry.Path, "destination", dest, logging.Error(err))
		return result
	}

	result.Moved = true
	m.logger.Info("moved file", "source", entry.Path, "destination", dest, "replaced", replaced)
	return result
}

// checkDestination enforces the collision policy. It reports whether an
// existing file will be replaced.
func (m *Mover) checkDestination(dest string) (bool, error) {
	info, err := os.Lstat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, &os.PathError{Op: "move", Path: dest, Err: syscall.EISDIR}
	}
	if !m.overwrite {
		return false, fmt.Errorf("%w: %s", ErrCollision, dest)
	}
	return true, nil
}

// samePath reports whether a and b name the same file on the root's
// filesystem
func (m *Mover) samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if m.caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// rename moves source to target, falling back to copy and delete when the
// two are on different devices. A symlink is recreated at target rather
// than replaced by a copy of what it points to.
func (m *Mover) rename(source, target string) error {
	renameErr := renameFile(source, target)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return renameErr
	}

	m.logger.Debug("rename crosses devices, copying instead", "source", source, "destination", target)
	if err := copyEntry(source, target); err != nil {
		return &MoveError{Op: "move", Path: source, Dest: target, Reason: ErrorCrossDevice, Original: err}
	}

	if err := os.Remove(source); err != nil {
		m.logger.Warn("failed to remove source file after copy; duplicate file remains",
			"source", source,
			"destination", target,
			logging.Error(err))
		moveErr := CategorizeError("remove", source, target, err)
		moveErr.Original = fmt.Errorf("%w (a copy was left at %s)", err, target)
		return moveErr
	}
	return nil
}
