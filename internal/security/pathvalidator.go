package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrInvalidFolderName is wrapped by every folder name validation failure
var ErrInvalidFolderName = errors.New("invalid folder name")

// PathValidator checks folder names and destination paths before the
// organizer creates folders or moves files into them
type PathValidator struct {
	protectedPaths []string
	reservedChars  string
}

// NewPathValidator creates a new PathValidator with default protected paths.
// reservedChars are characters the host filesystem refuses in a name.
func NewPathValidator(reservedChars string) *PathValidator {
	if reservedChars == "" {
		reservedChars = "/\x00"
	}
	return &PathValidator{
		reservedChars: reservedChars,
		protectedPaths: []string{
			// Unix system directories
			"/",
			"/bin",
			"/boot",
			"/dev",
			"/etc",
			"/lib",
			"/lib64",
			"/proc",
			"/sbin",
			"/sys",
			"/usr",
			"/var",
			// macOS system directories
			"/System",
			"/Applications",
			"/Library",
		},
	}
}

// ValidateFolderName checks that name can be created as a single folder
// directly inside the destination root
func (pv *PathValidator) ValidateFolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidFolderName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q refers to a directory, not a folder name", ErrInvalidFolderName, name)
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsAny(name, pv.reservedChars) {
		return fmt.Errorf("%w: %q contains reserved characters", ErrInvalidFolderName, name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains control characters", ErrInvalidFolderName, name)
		}
	}
	return nil
}

// ValidateDestinationRoot checks that root is an existing absolute directory
// outside the protected system paths
func (pv *PathValidator) ValidateDestinationRoot(root string) error {
	if !filepath.IsAbs(root) {
		return fmt.Errorf("destination root must be absolute: %s", root)
	}
	cleanRoot := filepath.Clean(root)

	if pv.IsProtectedPath(cleanRoot) {
		return fmt.Errorf("refusing to organize into protected path: %s", cleanRoot)
	}

	info, err := os.Stat(cleanRoot)
	if err != nil {
		return fmt.Errorf("destination root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination root is not a directory: %s", cleanRoot)
	}
	return nil
}

// ValidateWithin checks that target stays inside root once cleaned
func ValidateWithin(root, target string) error {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return fmt.Errorf("path %s is not inside %s: %w", target, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %s escapes %s", target, root)
	}
	return nil
}

// IsProtectedPath reports whether path is a protected system directory
// itself or sits directly below one
func (pv *PathValidator) IsProtectedPath(path string) bool {
	cleanPath := filepath.Clean(path)
	for _, protected := range pv.protectedPaths {
		if cleanPath == protected {
			return true
		}
		if protected == "/" {
			continue
		}
		if strings.HasPrefix(cleanPath, protected+"/") {
			rel, _ := filepath.Rel(protected, cleanPath)
			if !strings.Contains(rel, "/") {
				return true
			}
		}
	}
	return false
}
