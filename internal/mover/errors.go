package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"

	"github.com/fenilsonani/file-organizer/internal/security"
)

// ErrCollision is returned when the destination already holds a file with
// the same name and overwriting is disabled
var ErrCollision = errors.New("destination already exists")

// ErrorReason categorizes why a folder creation or move failed
type ErrorReason int

const (
	ErrorPermissionDenied ErrorReason = iota
	ErrorFileInUse
	ErrorFileNotFound
	ErrorIsDirectory
	ErrorInvalidPath
	ErrorCollision
	ErrorCrossDevice
	ErrorUnknown
)

// String returns a human-readable error reason
func (e ErrorReason) String() string {
	switch e {
	case ErrorPermissionDenied:
		return "Permission denied"
	case ErrorFileInUse:
		return "File is in use"
	case ErrorFileNotFound:
		return "File not found"
	case ErrorIsDirectory:
		return "Is a directory"
	case ErrorInvalidPath:
		return "Invalid path"
	case ErrorCollision:
		return "Name collision"
	case ErrorCrossDevice:
		return "Cross-device move failed"
	case ErrorUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// MoveError represents a detailed filesystem error from provisioning or
// moving
type MoveError struct {
	Op        string // "mkdir" or "move"
	Path      string
	Dest      string
	Reason    ErrorReason
	Original  error
	Retryable bool
}

// Error implements the error interface
func (e *MoveError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("%s %s -> %s: %s (%v)", e.Op, e.Path, e.Dest, e.Reason, e.Original)
	}
	return fmt.Sprintf("%s %s: %s (%v)", e.Op, e.Path, e.Reason, e.Original)
}

// Unwrap returns the underlying error
func (e *MoveError) Unwrap() error {
	return e.Original
}

// UserMessage returns a user-friendly error message
func (e *MoveError) UserMessage() string {
	switch e.Reason {
	case ErrorPermissionDenied:
		if e.Op == "mkdir" {
			return fmt.Sprintf("⚠️  Permission denied creating folder: %s", e.Path)
		}
		return fmt.Sprintf("⚠️  Permission denied: %s", e.Path)
	case ErrorFileInUse:
		return fmt.Sprintf("⚠️  File is being used: %s (close the application and try again)", e.Path)
	case ErrorFileNotFound:
		return fmt.Sprintf("ℹ️  File disappeared before it could be moved: %s", e.Path)
	case ErrorIsDirectory:
		return fmt.Sprintf("⚠️  A folder is in the way: %s", e.Dest)
	case ErrorInvalidPath:
		return fmt.Sprintf("❌ Invalid folder or path: %s", e.Path)
	case ErrorCollision:
		return fmt.Sprintf("⚠️  %s already exists (use --overwrite to replace it)", e.Dest)
	case ErrorCrossDevice:
		return fmt.Sprintf("❌ Could not copy %s to another drive: %v", e.Path, e.Original)
	default:
		return fmt.Sprintf("❌ Error moving %s: %v", e.Path, e.Original)
	}
}

// CategorizeError analyzes an error and returns a categorized MoveError
func CategorizeError(op, path, dest string, err error) *MoveError {
	if err == nil {
		return nil
	}

	var existing *MoveError
	if errors.As(err, &existing) {
		return existing
	}

	moveErr := &MoveError{
		Op:       op,
		Path:     path,
		Dest:     dest,
		Original: err,
		Reason:   ErrorUnknown,
	}

	switch {
	case errors.Is(err, ErrCollision):
		moveErr.Reason = ErrorCollision
		return moveErr
	case errors.Is(err, security.ErrInvalidFolderName):
		moveErr.Reason = ErrorInvalidPath
		return moveErr
	}

	// Check syscall errors
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM, syscall.EROFS:
			moveErr.Reason = ErrorPermissionDenied
		case syscall.EBUSY, syscall.ETXTBSY:
			moveErr.Reason = ErrorFileInUse
			moveErr.Retryable = true
		case syscall.ENOENT:
			moveErr.Reason = ErrorFileNotFound
		case syscall.EISDIR, syscall.ENOTEMPTY:
			moveErr.Reason = ErrorIsDirectory
		case syscall.ENOTDIR, syscall.ENAMETOOLONG, syscall.EINVAL:
			moveErr.Reason = ErrorInvalidPath
		case syscall.EEXIST:
			moveErr.Reason = ErrorCollision
		case syscall.EXDEV:
			moveErr.Reason = ErrorCrossDevice
		}
		return moveErr
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		moveErr.Reason = ErrorFileNotFound
	case errors.Is(err, fs.ErrPermission):
		moveErr.Reason = ErrorPermissionDenied
	case errors.Is(err, fs.ErrExist):
		moveErr.Reason = ErrorCollision
	case errors.Is(err, fs.ErrInvalid):
		moveErr.Reason = ErrorInvalidPath
	}

	return moveErr
}

// IsPermissionError reports whether err is a permission failure
func IsPermissionError(err error) bool {
	var moveErr *MoveError
	return errors.As(err, &moveErr) && moveErr.Reason == ErrorPermissionDenied
}

// IsPathError reports whether err was caused by an invalid folder or path
func IsPathError(err error) bool {
	var moveErr *MoveError
	return errors.As(err, &moveErr) && moveErr.Reason == ErrorInvalidPath
}

// GroupErrors groups move errors by reason
func GroupErrors(errs []*MoveError) map[ErrorReason][]*MoveError {
	grouped := make(map[ErrorReason][]*MoveError)
	for _, err := range errs {
		grouped[err.Reason] = append(grouped[err.Reason], err)
	}
	return grouped
}

// FormatErrorSummary creates a user-friendly summary of errors
func FormatErrorSummary(errs []*MoveError) string {
	if len(errs) == 0 {
		return ""
	}

	grouped := GroupErrors(errs)
	var b strings.Builder
	b.WriteString("\n⚠️  Issues encountered:\n")

	if collisions, ok := grouped[ErrorCollision]; ok {
		fmt.Fprintf(&b, "   ├─ Name collisions: %d files\n", len(collisions))
		b.WriteString("   │  └─ Tip: Rename the files or rerun with --overwrite\n")
	}

	if perms, ok := grouped[ErrorPermissionDenied]; ok {
		fmt.Fprintf(&b, "   ├─ Permission denied: %d files\n", len(perms))
		b.WriteString("   │  └─ Tip: Check ownership of the source and destination folders\n")
	}

	if busy, ok := grouped[ErrorFileInUse]; ok {
		fmt.Fprintf(&b, "   ├─ File in use: %d files\n", len(busy))
		b.WriteString("   │  └─ Tip: Close applications and retry\n")
	}

	if notFound, ok := grouped[ErrorFileNotFound]; ok {
		fmt.Fprintf(&b, "   ├─ Disappeared before moving: %d files\n", len(notFound))
	}

	if dirs, ok := grouped[ErrorIsDirectory]; ok {
		fmt.Fprintf(&b, "   ├─ Blocked by a folder: %d files\n", len(dirs))
	}

	if invalid, ok := grouped[ErrorInvalidPath]; ok {
		fmt.Fprintf(&b, "   ├─ Invalid paths: %d files\n", len(invalid))
	}

	if xdev, ok := grouped[ErrorCrossDevice]; ok {
		fmt.Fprintf(&b, "   ├─ Cross-device copy failed: %d files\n", len(xdev))
	}

	if unknown, ok := grouped[ErrorUnknown]; ok {
		fmt.Fprintf(&b, "   └─ Other errors: %d files\n", len(unknown))
	}

	retryable := 0
	for _, err := range errs {
		if err.Retryable {
			retryable++
		}
	}
	if retryable > 0 {
		fmt.Fprintf(&b, "\n💡 %d file(s) may move if you run the same command again\n", retryable)
	}

	return b.String()
}
