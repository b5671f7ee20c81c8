package platform

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	got := Detect()
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		if string(got) != runtime.GOOS {
			t.Errorf("Detect() = %s, want %s", got, runtime.GOOS)
		}
	default:
		if got != Unknown {
			t.Errorf("Detect() = %s, want unknown", got)
		}
	}
}

func TestGetInfo(t *testing.T) {
	if Detect() == Unknown {
		t.Skip("unsupported platform")
	}

	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}

	if info.HomeDir == "" {
		t.Error("HomeDir is empty")
	}

	wd, _ := os.Getwd()
	if info.WorkDir != wd {
		t.Errorf("WorkDir = %q, want %q", info.WorkDir, wd)
	}

	if !strings.Contains(info.ReservedChars, "/") {
		t.Errorf("ReservedChars = %q, must contain the path separator", info.ReservedChars)
	}
}

func TestGetUserConfigDirXDG(t *testing.T) {
	if Detect() != Linux {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetUserConfigDir()
	if err != nil {
		t.Fatalf("GetUserConfigDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("GetUserConfigDir() = %q, want %q", got, dir)
	}
}

func TestGetInfoPrefersHomeEnv(t *testing.T) {
	if Detect() == Unknown || Detect() == Windows {
		t.Skip("HOME is not consulted on this platform")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}
	if info.HomeDir != home {
		t.Errorf("HomeDir = %q, want %q from $HOME", info.HomeDir, home)
	}
}

func TestCaseInsensitivity(t *testing.T) {
	info, err := GetInfo()
	if err != nil {
		t.Skipf("GetInfo() error = %v", err)
	}
	want := info.OS == MacOS || info.OS == Windows
	if info.CaseInsensitive != want {
		t.Errorf("CaseInsensitive = %v on %s", info.CaseInsensitive, info.OS)
	}
}
