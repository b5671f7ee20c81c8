package mover

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/fenilsonani/file-organizer/internal/security"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantReason    ErrorReason
		wantRetryable bool
	}{
		// Nil error
		{"nil error", nil, ErrorUnknown, false},

		// Standard errors
		{"os.ErrNotExist", os.ErrNotExist, ErrorFileNotFound, false},
		{"os.ErrPermission", os.ErrPermission, ErrorPermissionDenied, false},
		{"os.ErrExist", os.ErrExist, ErrorCollision, false},

		// Sentinels
		{"collision", fmt.Errorf("%w: /home/u/a.txt", ErrCollision), ErrorCollision, false},
		{"invalid folder", fmt.Errorf("%w: bad", security.ErrInvalidFolderName), ErrorInvalidPath, false},

		// Syscall errors
		{"EACCES", syscall.EACCES, ErrorPermissionDenied, false},
		{"EPERM", syscall.EPERM, ErrorPermissionDenied, false},
		{"EBUSY", syscall.EBUSY, ErrorFileInUse, true},
		{"ENOENT", syscall.ENOENT, ErrorFileNotFound, false},
		{"EISDIR", syscall.EISDIR, ErrorIsDirectory, false},
		{"ENOTDIR", syscall.ENOTDIR, ErrorInvalidPath, false},
		{"EXDEV", syscall.EXDEV, ErrorCrossDevice, false},
		{"link error EACCES", &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.EACCES}, ErrorPermissionDenied, false},
		{"wrapped path error", fmt.Errorf("failed: %w", &os.PathError{Op: "mkdir", Path: "/x", Err: syscall.EBUSY}), ErrorFileInUse, true},

		// Unknown errors
		{"generic error", errors.New("something went wrong"), ErrorUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CategorizeError("move", "/test/path", "/dest/path", tt.err)

			if tt.err == nil {
				if result != nil {
					t.Error("expected nil for nil error")
				}
				return
			}

			if result == nil {
				t.Fatal("unexpected nil result")
			}
			if result.Reason != tt.wantReason {
				t.Errorf("Reason = %v, want %v", result.Reason, tt.wantReason)
			}
			if result.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", result.Retryable, tt.wantRetryable)
			}
			if result.Path != "/test/path" || result.Dest != "/dest/path" {
				t.Errorf("paths = %q -> %q", result.Path, result.Dest)
			}
			if !errors.Is(result, tt.err) {
				t.Error("MoveError does not unwrap to the original error")
			}
		})
	}
}

func TestCategorizeErrorKeepsMoveError(t *testing.T) {
	original := &MoveError{Op: "move", Path: "/a", Reason: ErrorCrossDevice, Original: errors.New("copy failed")}

	got := CategorizeError("move", "/other", "", fmt.Errorf("wrapped: %w", original))
	if got != original {
		t.Errorf("expected the existing MoveError to be returned, got %+v", got)
	}
}

func TestMoveErrorError(t *testing.T) {
	err := &MoveError{Op: "move", Path: "/w/a.txt", Dest: "/h/Documents/a.txt", Reason: ErrorCollision, Original: ErrCollision}
	msg := err.Error()

	for _, want := range []string{"/w/a.txt", "/h/Documents/a.txt", "Name collision"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, should contain %q", msg, want)
		}
	}

	mkdirErr := &MoveError{Op: "mkdir", Path: "/h/Notes", Reason: ErrorPermissionDenied, Original: os.ErrPermission}
	if strings.Contains(mkdirErr.Error(), "->") {
		t.Errorf("mkdir error should not show a destination: %q", mkdirErr.Error())
	}
}

func TestMoveErrorUserMessage(t *testing.T) {
	tests := []struct {
		name          string
		err           *MoveError
		shouldContain string
	}{
		{"collision", &MoveError{Op: "move", Dest: "/h/a.txt", Reason: ErrorCollision}, "--overwrite"},
		{"mkdir permission", &MoveError{Op: "mkdir", Path: "/h/Notes", Reason: ErrorPermissionDenied}, "creating folder"},
		{"in use", &MoveError{Op: "move", Path: "/w/a.txt", Reason: ErrorFileInUse}, "being used"},
		{"vanished", &MoveError{Op: "move", Path: "/w/a.txt", Reason: ErrorFileNotFound}, "disappeared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := tt.err.UserMessage(); !strings.Contains(msg, tt.shouldContain) {
				t.Errorf("UserMessage() = %s, should contain %s", msg, tt.shouldContain)
			}
		})
	}
}

func TestErrorReasonString(t *testing.T) {
	tests := []struct {
		reason   ErrorReason
		expected string
	}{
		{ErrorPermissionDenied, "Permission denied"},
		{ErrorFileNotFound, "File not found"},
		{ErrorFileInUse, "File is in use"},
		{ErrorIsDirectory, "Is a directory"},
		{ErrorInvalidPath, "Invalid path"},
		{ErrorCollision, "Name collision"},
		{ErrorUnknown, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.reason.String(); result != tt.expected {
				t.Errorf("ErrorReason(%d).String() = %s, want %s", int(tt.reason), result, tt.expected)
			}
		})
	}
}

func TestIsPermissionAndPathError(t *testing.T) {
	perm := CategorizeError("mkdir", "/h/x", "", syscall.EACCES)
	if !IsPermissionError(fmt.Errorf("ensure: %w", perm)) {
		t.Error("IsPermissionError should see through wrapping")
	}
	if IsPathError(perm) {
		t.Error("permission error reported as path error")
	}

	path := CategorizeError("mkdir", "/h/a:b", "", security.ErrInvalidFolderName)
	if !IsPathError(path) {
		t.Error("IsPathError should be true for invalid folder names")
	}
}

func TestFormatErrorSummary(t *testing.T) {
	errs := []*MoveError{
		{Path: "/w/1.txt", Reason: ErrorCollision},
		{Path: "/w/2.txt", Reason: ErrorCollision},
		{Path: "/w/3.txt", Reason: ErrorPermissionDenied},
		{Path: "/w/4.txt", Reason: ErrorUnknown},
	}

	summary := FormatErrorSummary(errs)

	if !strings.Contains(summary, "Name collisions: 2 files") {
		t.Errorf("summary missing collision count:\n%s", summary)
	}
	if !strings.Contains(summary, "Permission denied: 1 files") {
		t.Errorf("summary missing permission count:\n%s", summary)
	}
	if !strings.Contains(summary, "Other errors: 1 files") {
		t.Errorf("summary missing unknown count:\n%s", summary)
	}

	if strings.Contains(summary, "run the same command again") {
		t.Errorf("summary offers a retry without retryable errors:\n%s", summary)
	}

	if FormatErrorSummary(nil) != "" {
		t.Error("expected empty summary for nil errors")
	}
}

func TestFormatErrorSummaryRetryable(t *testing.T) {
	busy := CategorizeError("move", "/w/locked.docx", "/h/Documents/locked.docx", syscall.EBUSY)
	summary := FormatErrorSummary([]*MoveError{busy, {Path: "/w/x", Reason: ErrorCollision}})

	if !strings.Contains(summary, "File in use: 1 files") {
		t.Errorf("summary missing busy count:\n%s", summary)
	}
	if !strings.Contains(summary, "1 file(s) may move if you run the same command again") {
		t.Errorf("summary missing retry hint:\n%s", summary)
	}
}

func TestGroupErrors(t *testing.T) {
	grouped := GroupErrors([]*MoveError{
		{Reason: ErrorCollision},
		{Reason: ErrorCollision},
		{Reason: ErrorFileInUse},
	})

	if len(grouped[ErrorCollision]) != 2 || len(grouped[ErrorFileInUse]) != 1 {
		t.Errorf("unexpected grouping: %v", grouped)
	}
	if len(grouped[ErrorUnknown]) != 0 {
		t.Error("expected no unknown errors")
	}
}
