package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/amenu/internal/picker"
	"github.com/five82/amenu/internal/prefs"
)

const placeholderText = "Type..."

// Options configures the UI.
type Options struct {
	Controller *picker.Controller
	ThemeName  string
	PrefsPath  string
	ShowHelp   bool
	AltScreen  bool
	Logger     *log.Logger
}

// Model is the Bubble Tea model for the picker bar. It turns key presses
// into controller events and draws the controller's render model.
type Model struct {
	ctrl      *picker.Controller
	prefsPath string
	logger    *log.Logger

	input    textinput.Model
	keys     keyMap
	help     help.Model
	showHelp bool

	theme  Theme
	styles Styles
	width  int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = picker.NewController(nil, nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholderText
	ti.Focus()

	m := Model{
		ctrl:      ctrl,
		prefsPath: prefsPath,
		logger:    logger,
		input:     ti,
		keys:      DefaultKeyMap(),
		showHelp:  opts.ShowHelp,
	}
	m.setTheme(GetTheme(opts.ThemeName))
	m.help = newHelp(m.styles)
	m.fitInput()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	rm, ok := m.ctrl.Render()
	if !ok {
		return ""
	}
	bar := m.renderBar(rm)
	if !m.showHelp {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.renderHelp())
}

// Termination reports how the picker ended, once it has.
func (m Model) Termination() (picker.Termination, bool) {
	return m.ctrl.Termination()
}

// Query returns the text in the query box.
func (m Model) Query() string {
	return m.input.Value()
}

// ThemeName returns the active theme.
func (m Model) ThemeName() string {
	return m.theme.Name
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.State() == picker.Terminating {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Dispatch(picker.CancelEvent{})
		m.logger.Debug("picker cancelled")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cycle):
		m.ctrl.Dispatch(picker.CycleEvent{})
		return m, nil

	case key.Matches(msg, m.keys.Commit):
		m.ctrl.Dispatch(picker.CommitEvent{})
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.ctrl.Dispatch(picker.QueryChangedEvent{Query: after})
		m.fitInput()
	}
	return m, cmd
}

func (m *Model) cycleTheme() {
	m.setTheme(GetTheme(NextTheme(m.theme.Name)))
	applyHelpStyles(&m.help, m.styles)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save theme preference failed", "theme", m.theme.Name, "err", err)
	}
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.styles = t.Styles()
	m.input.TextStyle = m.styles.Input
	m.input.PlaceholderStyle = m.styles.Placeholder
	m.input.Cursor.Style = m.styles.Input
	m.input.Cursor.TextStyle = m.styles.Input
}

// fitInput sizes the query box to its content so chips follow the text.
func (m *Model) fitInput() {
	w := lipgloss.Width(m.input.Value()) + inputTrailroom
	if ph := lipgloss.Width(placeholderText); m.input.Value() == "" && w < ph {
		w = ph
	}
	if w < minInputWidth {
		w = minInputWidth
	}
	m.input.Width = w
}
