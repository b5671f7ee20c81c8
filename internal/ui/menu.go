package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fenilsonani/file-organizer/internal/organizer"
	"github.com/fenilsonani/file-organizer/internal/reporter"
)

// Runner executes one organize request
type Runner func(ctx context.Context, req organizer.Request) (*organizer.Result, error)

// handler runs one menu option. done ends the menu loop.
type handler func(ctx context.Context) (done bool, err error)

// Menu is the line-based interactive menu. It reads answers from in and
// writes prompts and results to out.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	run      Runner
	reporter *reporter.Reporter
	handlers map[Option]handler
}

// NewMenu creates a menu that runs requests with run and renders results
// with rep
func NewMenu(in io.Reader, out io.Writer, run Runner, rep *reporter.Reporter) *Menu {
	m := &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		run:      run,
		reporter: rep,
	}
	m.handlers = map[Option]handler{
		OptionOrganizeAll:     m.organizeAll,
		OptionOrganizeType:    m.organizeType,
		OptionOrganizeKeyword: m.organizeKeyword,
		OptionExit:            m.exit,
	}
	return m
}

// Run shows the menu until an option completes, the user exits or input
// ends. Invalid answers are reported and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		answer, ok := m.ask("\nSelect option 1, 2, 3, or 4: \n")
		if !ok {
			return m.in.Err()
		}

		opt, err := ParseOption(answer)
		if err != nil {
			fmt.Fprintf(m.out, "\n %s \n\n", err)
			continue
		}

		done, err := m.handlers[opt](ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (m *Menu) printMenu() {
	for _, opt := range Options {
		fmt.Fprintf(m.out, "Option %d: %s\n", opt, opt.Description())
	}
}

// ask prints prompt and reads one line. ok is false at end of input.
func (m *Menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// askUntil repeats prompt until parse accepts the answer
func (m *Menu) askUntil(prompt string, parse func(string) (string, error)) (string, bool) {
	for {
		answer, ok := m.ask(prompt)
		if !ok {
			return "", false
		}
		value, err := parse(answer)
		if err == nil {
			return value, true
		}
		fmt.Fprintf(m.out, "\n %s \n\n", err)
	}
}

func (m *Menu) organizeAll(ctx context.Context) (bool, error) {
	return true, m.execute(ctx, organizer.Request{Mode: organizer.ModeAll})
}

func (m *Menu) organizeType(ctx context.Context) (bool, error) {
	ext, ok := m.askUntil("What file extension type would you like to move?(e.g. .txt, .pdf, .ini)", ParseExtension)
	if !ok {
		return true, m.in.Err()
	}
	return true, m.execute(ctx, organizer.Request{Mode: organizer.ModeType, Extension: ext})
}

func (m *Menu) organizeKeyword(ctx context.Context) (bool, error) {
	folder, ok := m.askUntil("Folder name: ", func(s string) (string, error) {
		return ParseRequired("Folder name", s)
	})
	if !ok {
		return true, m.in.Err()
	}
	keyword, ok := m.askUntil("Keyword: ", func(s string) (string, error) {
		return ParseRequired("Keyword", s)
	})
	if !ok {
		return true, m.in.Err()
	}
	return true, m.execute(ctx, organizer.Request{Mode: organizer.ModeKeyword, Folder: folder, Keyword: keyword})
}

func (m *Menu) exit(context.Context) (bool, error) {
	fmt.Fprintln(m.out, "Exiting Program...Goodbye:)")
	return true, nil
}

func (m *Menu) execute(ctx context.Context, req organizer.Request) error {
	result, err := m.run(ctx, req)
	if result != nil {
		if reportErr := m.reporter.Report(result); reportErr != nil {
			return errors.Join(err, reportErr)
		}
	}
	return err
}
