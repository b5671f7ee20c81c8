package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fenilsonani/file-organizer/internal/ui/styles"
	"github.com/fenilsonani/file-organizer/internal/ui/utils"
)

// Shortcut is a key hint shown on the right of the status bar
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar shows where files come from and where they go
type StatusBar struct {
	workDir string
	root    string
	dryRun  bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(workDir, root string, dryRun bool) *StatusBar {
	return &StatusBar{
		workDir: workDir,
		root:    root,
		dryRun:  dryRun,
	}
}

// Render renders the status bar with the given width
func (s *StatusBar) Render(width int, shortcuts []Shortcut) string {
	if width <= 0 {
		width = 80
	}

	var shortcutParts []string
	for _, sc := range shortcuts {
		shortcutParts = append(shortcutParts, fmt.Sprintf("%s:%s", styles.DimStyle.Render(sc.Key), sc.Desc))
	}
	rightSide := strings.Join(shortcutParts, " ")

	var parts []string
	if s.dryRun {
		parts = append(parts, styles.WarningStyle.Render("DRY RUN"))
	}

	// both paths share what is left after the shortcuts
	pathWidth := (width - lipgloss.Width(rightSide) - 12) / 2
	if pathWidth < 10 {
		pathWidth = 10
	}
	parts = append(parts, fmt.Sprintf("%s → %s",
		styles.BoldStyle.Render(utils.TruncatePath(s.workDir, pathWidth)),
		utils.TruncatePath(s.root, pathWidth)))

	leftSide := strings.Join(parts, " • ")

	spacing := width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if spacing < 1 {
		spacing = 1
	}

	return RenderSimple(leftSide+strings.Repeat(" ", spacing)+rightSide, width)
}

// RenderSimple renders a simple status bar with just a message
func RenderSimple(message string, width int) string {
	if width <= 0 {
		width = 80
	}

	statusBarStyle := lipgloss.NewStyle().
		Foreground(styles.Text).
		Background(styles.BgDark).
		Padding(0, 1).
		Width(width)

	return statusBarStyle.Render(message)
}
