package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/ui/styles"
)

const (
	// MinTerminalWidth is the minimum recommended terminal width
	MinTerminalWidth = 60
	// MinTerminalHeight is the minimum recommended terminal height
	MinTerminalHeight = 16
)

// TruncatePath shortens path to maxWidth runes, keeping the last element
// and as much of the leading directories as fits
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) <= maxWidth {
		return path
	}
	if maxWidth < 10 {
		return "..."
	}

	dir, file := filepath.Split(path)
	fileRunes := []rune(file)

	// If filename alone is too long, keep its tail
	if len(fileRunes) > maxWidth-4 {
		return "..." + string(fileRunes[len(fileRunes)-(maxWidth-4):])
	}

	available := maxWidth - len(fileRunes) - 4 // "..." and a separator
	if available <= 0 {
		return "..." + string(filepath.Separator) + file
	}

	dirRunes := []rune(strings.TrimSuffix(dir, string(filepath.Separator)))
	if len(dirRunes) > available {
		dirRunes = dirRunes[:available]
	}
	return string(dirRunes) + "..." + string(filepath.Separator) + file
}

// TruncateString truncates a string to maxLen runes, adding ellipsis if needed
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateMiddle truncates a string from the middle, preserving start and end
func TruncateMiddle(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 10 {
		return TruncateString(s, maxLen)
	}

	sideLen := (maxLen - 3) / 2
	return string(runes[:sideLen]) + "..." + string(runes[len(runes)-sideLen:])
}

// IsTerminalTooSmall checks if the terminal is below minimum recommended size
func IsTerminalTooSmall(width, height int) bool {
	return width < MinTerminalWidth || height < MinTerminalHeight
}

// GetSizeWarningBanner returns a warning banner if terminal is too small.
// An unknown size (0x0) gets no banner.
func GetSizeWarningBanner(width, height int) string {
	if width == 0 && height == 0 {
		return ""
	}
	if !IsTerminalTooSmall(width, height) {
		return ""
	}

	warning := fmt.Sprintf("⚠️  Terminal too small! Recommended: %dx%d or larger", MinTerminalWidth, MinTerminalHeight)
	warning += styles.DimStyle.Render(" (current: ") +
		styles.WarningStyle.Render(fmt.Sprintf("%dx%d", width, height)) +
		styles.DimStyle.Render(")")

	return styles.WarningStyle.Render(warning) + "\n\n"
}
