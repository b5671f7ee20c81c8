package platform

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
	Unknown Platform = "unknown"
)

// Info contains platform-specific information and paths
type Info struct {
	OS      Platform
	HomeDir string
	WorkDir string

	// ReservedChars can never appear in a folder name on this platform
	ReservedChars string
	// CaseInsensitive is true when the default filesystem ignores case
	CaseInsensitive bool
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information for the current process.
// The working directory is captured once, at call time.
func GetInfo() (*Info, error) {
	home, err := homeDir()
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var info *Info
	switch Detect() {
	case MacOS:
		info = getMacOSInfo(home)
	case Linux:
		info = getLinuxInfo(home)
	case Windows:
		info = getWindowsInfo(home)
	default:
		return nil, ErrUnsupportedPlatform
	}
	info.WorkDir = workDir

	return info, nil
}

// homeDir resolves the home directory from $HOME (or its platform
// equivalent), falling back to the user database when it is unset.
func homeDir() (string, error) {
	if dir, err := os.UserHomeDir(); err == nil && dir != "" {
		return dir, nil
	}

	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if u.HomeDir == "" {
		return "", fmt.Errorf("failed to get home directory: no home directory for user %s", u.Username)
	}
	return u.HomeDir, nil
}

// GetUserConfigDir returns the user's config directory
func GetUserConfigDir() (string, error) {
	switch Detect() {
	case Linux:
		// Try XDG_CONFIG_HOME first
		if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
			return configDir, nil
		}
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config"), nil
	case MacOS:
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config"), nil
	case Windows:
		return os.UserConfigDir()
	default:
		return "", ErrUnsupportedPlatform
	}
}

// Errors
var (
	ErrUnsupportedPlatform = &PlatformError{"unsupported platform"}
)

// PlatformError represents a platform-related error
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	return e.Message
}
