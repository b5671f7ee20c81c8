package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned by RunTUI when stdin or stdout is not a terminal
var ErrNotTerminal = errors.New("the terminal UI needs an interactive terminal")

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RunTUI starts the terminal UI and returns the fatal error of the run
// the user started, if any
func RunTUI(ctx context.Context, opts AppOptions) error {
	if !IsTerminal(os.Stdin) || !IsTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	m := NewAppModel(ctx, opts)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}

	app, ok := final.(*AppModel)
	if !ok {
		return nil
	}
	// the alternate screen is gone by now
	if app.goodbye {
		fmt.Println("Exiting Program...Goodbye:)")
	}
	return app.Err()
}
