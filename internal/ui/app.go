package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/organizer"
	orgprogress "github.com/fenilsonani/file-organizer/internal/progress"
	"github.com/fenilsonani/file-organizer/internal/ui/components"
	"github.com/fenilsonani/file-organizer/internal/ui/styles"
)

// ViewState represents the current view in the app
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewPrompt
	ViewRunning
	ViewDone
)

// AppOptions configures the terminal UI
type AppOptions struct {
	Run      Runner
	Progress *orgprogress.Reporter // must be the reporter the organizer publishes to
	Table    *category.Table
	WorkDir  string
	Root     string
	DryRun   bool
}

// prompt is one question asked before running an option
type prompt struct {
	label       string
	placeholder string
	parse       func(string) (string, error)
}

// AppModel is the root model for the terminal UI. It offers the same four
// options as the line menu and exits after one of them completes.
type AppModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   AppOptions

	state    ViewState
	cursor   int
	dispatch map[Option]func() tea.Cmd
	status   string // last input error

	// prompt state
	option  Option
	prompts []prompt
	step    int
	answers []string
	input   textinput.Model

	// run state
	spinner   spinner.Model
	bar       progress.Model
	updates   <-chan orgprogress.Update
	latest    orgprogress.Update
	result    *organizer.Result
	err       error
	goodbye   bool
	statusBar *components.StatusBar

	width  int
	height int
}

// NewAppModel creates a new app model
func NewAppModel(ctx context.Context, opts AppOptions) *AppModel {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	ctx, cancel := context.WithCancel(ctx)
	m := &AppModel{
		ctx:       ctx,
		cancel:    cancel,
		opts:      opts,
		state:     ViewMenu,
		input:     ti,
		spinner:   s,
		bar:       progress.New(progress.WithDefaultGradient()),
		statusBar: components.NewStatusBar(opts.WorkDir, opts.Root, opts.DryRun),
	}
	m.dispatch = map[Option]func() tea.Cmd{
		OptionOrganizeAll: func() tea.Cmd {
			return m.start(organizer.Request{Mode: organizer.ModeAll})
		},
		OptionOrganizeType: func() tea.Cmd {
			return m.ask(OptionOrganizeType, prompt{
				label:       "What file extension type would you like to move?",
				placeholder: ".txt, .pdf, .ini",
				parse:       ParseExtension,
			})
		},
		OptionOrganizeKeyword: func() tea.Cmd {
			return m.ask(OptionOrganizeKeyword,
				prompt{label: "Folder name", placeholder: "Notes", parse: func(s string) (string, error) {
					return ParseRequired("Folder name", s)
				}},
				prompt{label: "Keyword", placeholder: "report", parse: func(s string) (string, error) {
					return ParseRequired("Keyword", s)
				}},
			)
		},
		OptionExit: func() tea.Cmd {
			m.goodbye = true
			return tea.Quit
		},
	}
	return m
}

// State returns the current view
func (m *AppModel) State() ViewState {
	return m.state
}

// Result returns the result of the completed run, if any
func (m *AppModel) Result() *organizer.Result {
	return m.result
}

// Err returns the fatal error of the completed run, if any
func (m *AppModel) Err() error {
	return m.err
}

// Init initializes the model
func (m *AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-4, 60)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// a running batch stops after the current file
			m.cancel()
			if m.state != ViewRunning {
				return m, tea.Quit
			}
			return m, nil
		}

	case progressMsg:
		m.latest = orgprogress.Update(msg)
		return m, waitForProgress(m.updates)

	case runCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = ViewDone
		m.cancel()
		if m.updates != nil && m.opts.Progress != nil {
			m.opts.Progress.Unsubscribe(m.updates)
			m.updates = nil
		}
		return m, nil
	}

	switch m.state {
	case ViewMenu:
		return m.updateMenu(msg)
	case ViewPrompt:
		return m.updatePrompt(msg)
	case ViewRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ViewDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(Options)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, m.choose(Options[m.cursor])
	}

	if key.Type != tea.KeyRunes {
		return m, nil
	}
	opt, err := ParseOption(string(key.Runes))
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	return m, m.choose(opt)
}

func (m *AppModel) choose(opt Option) tea.Cmd {
	m.status = ""
	return m.dispatch[opt]()
}

// ask switches to the prompt view for the given questions
func (m *AppModel) ask(opt Option, prompts ...prompt) tea.Cmd {
	m.option = opt
	m.prompts = prompts
	m.step = 0
	m.answers = m.answers[:0]
	m.state = ViewPrompt
	m.resetInput()
	return textinput.Blink
}

func (m *AppModel) resetInput() {
	p := m.prompts[m.step]
	m.input.SetValue("")
	m.input.Placeholder = p.placeholder
	m.input.Prompt = p.label + ": "
	m.input.Focus()
}

func (m *AppModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.input.Blur()
			m.status = ""
			m.state = ViewMenu
			return m, nil
		case tea.KeyEnter:
			value, err := m.prompts[m.step].parse(m.input.Value())
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = ""
			m.answers = append(m.answers, value)
			m.step++
			if m.step < len(m.prompts) {
				m.resetInput()
				return m, nil
			}
			m.input.Blur()
			return m, m.start(m.request())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// request builds the organize request from the collected answers
func (m *AppModel) request() organizer.Request {
	switch m.option {
	case OptionOrganizeType:
		return organizer.Request{Mode: organizer.ModeType, Extension: m.answers[0]}
	case OptionOrganizeKeyword:
		return organizer.Request{Mode: organizer.ModeKeyword, Folder: m.answers[0], Keyword: m.answers[1]}
	default:
		return organizer.Request{Mode: organizer.ModeAll}
	}
}

// start runs req in the background and follows its progress
func (m *AppModel) start(req organizer.Request) tea.Cmd {
	m.state = ViewRunning
	m.latest = orgprogress.Update{Phase: orgprogress.PhaseProvisioning}

	cmds := []tea.Cmd{m.spinner.Tick, runOrganizer(m.ctx, m.opts.Run, req)}
	if m.opts.Progress != nil {
		m.updates = m.opts.Progress.Subscribe()
		cmds = append(cmds, waitForProgress(m.updates))
	}
	return tea.Batch(cmds...)
}

type progressMsg orgprogress.Update

type runCompleteMsg struct {
	result *organizer.Result
	err    error
}

func runOrganizer(ctx context.Context, run Runner, req organizer.Request) tea.Cmd {
	return func() tea.Msg {
		if run == nil {
			return runCompleteMsg{err: fmt.Errorf("no runner configured")}
		}
		result, err := run(ctx, req)
		return runCompleteMsg{result: result, err: err}
	}
}

func waitForProgress(ch <-chan orgprogress.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(u)
	}
}
