package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/mover"
	orgprogress "github.com/fenilsonani/file-organizer/internal/progress"
	"github.com/fenilsonani/file-organizer/internal/reporter"
	"github.com/fenilsonani/file-organizer/internal/ui/components"
	"github.com/fenilsonani/file-organizer/internal/ui/styles"
	"github.com/fenilsonani/file-organizer/internal/ui/utils"
)

// View renders the current view
func (m *AppModel) View() string {
	if m.goodbye {
		return "Exiting Program...Goodbye:)\n"
	}

	var b strings.Builder
	b.WriteString(utils.GetSizeWarningBanner(m.width, m.height))

	switch m.state {
	case ViewMenu:
		b.WriteString(m.viewMenu())
	case ViewPrompt:
		b.WriteString(m.viewPrompt())
	case ViewRunning:
		b.WriteString(m.viewRunning())
	case ViewDone:
		b.WriteString(m.viewDone())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, m.shortcuts()))
	return b.String()
}

func (m *AppModel) viewMenu() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📁 File Organizer"))
	b.WriteString("\n")

	for i, opt := range Options {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", opt, opt.Description())
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("▸ ")
			line = styles.SelectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *AppModel) viewPrompt() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Option %d", m.option)))
	b.WriteString("\n")

	for i, answer := range m.answers {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%s: %s", m.prompts[i].label, answer)))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func (m *AppModel) viewRunning() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Organizing"))
	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(orgprogress.Format(m.latest))
	b.WriteString("\n\n")

	percent := 0.0
	if m.latest.Total > 0 {
		percent = float64(m.latest.Done) / float64(m.latest.Total)
	}
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n")

	if m.latest.CurrentFile != "" {
		b.WriteString(styles.FilePathStyle.Render(utils.TruncateMiddle(m.latest.CurrentFile, 60)))
		b.WriteString(" → ")
		b.WriteString(styles.CategoryStyle.Render(m.latest.Folder))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *AppModel) viewDone() string {
	var b strings.Builder

	if m.err != nil && m.result == nil {
		b.WriteString(styles.ErrorStyle.Render("✗ " + userMessage(m.err)))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("Press any key to exit"))
		return b.String()
	}

	b.WriteString(styles.SuccessStyle.Render("✓ Done"))
	b.WriteString("\n")

	if m.result != nil {
		if m.result.DryRun {
			b.WriteString(styles.WarningStyle.Render("Dry run: no files were changed."))
			b.WriteString("\n")
		}
		lines := reporter.Messages(m.result, m.opts.Table)
		if len(lines) == 0 {
			b.WriteString(styles.DimStyle.Render("Nothing to organize."))
			b.WriteString("\n")
		}
		for _, line := range lines {
			b.WriteString("\n" + line + "\n")
		}
		if m.result.HasFailures() {
			b.WriteString("\n")
			b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("%d succeeded, %d failed", m.result.Moved, len(m.result.Failures))))
			b.WriteString("\n")
			for _, f := range m.result.Failures {
				b.WriteString("  " + f.UserMessage() + "\n")
			}
		}
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.WarningStyle.Render("Stopped: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Press any key to exit"))
	return b.String()
}

func (m *AppModel) shortcuts() []components.Shortcut {
	switch m.state {
	case ViewMenu:
		return []components.Shortcut{{Key: "1-4", Desc: "choose"}, {Key: "↑/↓", Desc: "move"}, {Key: "enter", Desc: "select"}, {Key: "q", Desc: "quit"}}
	case ViewPrompt:
		return []components.Shortcut{{Key: "enter", Desc: "confirm"}, {Key: "esc", Desc: "back"}}
	case ViewRunning:
		return []components.Shortcut{{Key: "ctrl+c", Desc: "stop"}}
	default:
		return []components.Shortcut{{Key: "any key", Desc: "exit"}}
	}
}

// userMessage prefers the friendly text of filesystem errors
func userMessage(err error) string {
	if moveErr, ok := asMoveError(err); ok {
		return moveErr.UserMessage()
	}
	return err.Error()
}

func asMoveError(err error) (*mover.MoveError, bool) {
	var moveErr *mover.MoveError
	if errors.As(err, &moveErr) {
		return moveErr, true
	}
	return nil, false
}
