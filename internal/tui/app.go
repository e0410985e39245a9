package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/deskclock/internal/config"
)

// tickMsg drives the live clock preview.
type tickMsg time.Time

// model is the root bubbletea model for the settings editor.
type model struct {
	configPath string
	cfg        *config.Config

	// Edit mode
	editing bool
	form    *huh.Form

	// Form-bound values (strings for huh, converted on submit)
	fFormat       string
	fBackground   string
	fChromeHeight string
	fDebounce     string
	fFrameRate    string
	fAlwaysOnTop  bool
	fResizable    bool

	status    string
	lastError string
	dirty     bool

	width  int
	height int
}

func newModel(configPath string) (model, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return model{}, err
		}
		path = p
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return model{}, err
	}

	return model{configPath: path, cfg: cfg}, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.editing {
			return m, nil
		}
	}

	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateDisplay(msg)
}

func (m model) updateDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch km.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "e":
		m.startEditing()
		return m, m.form.Init()
	case "ctrl+s":
		if err := config.Save(m.configPath, m.cfg); err != nil {
			m.lastError = err.Error()
			return m, nil
		}
		m.lastError = ""
		m.status = "saved to " + m.configPath
		m.dirty = false
		return m, nil
	}
	return m, nil
}

func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.editing = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.applyForm()
		m.editing = false
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *model) startEditing() {
	cfg := m.cfg
	m.fFormat = cfg.Format
	m.fBackground = cfg.Background
	m.fChromeHeight = strconv.Itoa(cfg.ChromeHeight)
	m.fDebounce = strconv.Itoa(cfg.SaveDebounceMS)
	m.fFrameRate = strconv.Itoa(cfg.FrameRate)
	m.fAlwaysOnTop = cfg.OnTop()
	m.fResizable = cfg.CanResize()

	w := m.width - 4
	if w < 40 {
		w = 40
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("format").
				Title("Clock Format").
				Description("Go time layout with &(rrggbb) color codes").
				Value(&m.fFormat),

			huh.NewInput().
				Key("background").
				Title("Background").
				Description("Window background, rrggbb hex").
				Value(&m.fBackground),

			huh.NewInput().
				Key("chrome_height").
				Title("Chrome Height").
				Description("Title bar height in pixels, used to keep the footprint stable when the border toggles").
				Value(&m.fChromeHeight),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("save_debounce_ms").
				Title("Save Debounce").
				Description("Milliseconds of quiet before geometry is written to disk").
				Value(&m.fDebounce),

			huh.NewInput().
				Key("frame_rate").
				Title("Frame Rate").
				Description("Main loop frames per second").
				Value(&m.fFrameRate),

			huh.NewConfirm().
				Key("always_on_top").
				Title("Always On Top").
				Value(&m.fAlwaysOnTop),

			huh.NewConfirm().
				Key("resizable").
				Title("Resizable").
				Value(&m.fResizable),
		),
	).WithWidth(w).WithShowHelp(true).WithShowErrors(true)

	m.editing = true
}

// applyForm converts the form values into a candidate config and adopts
// it only when it validates, so a typo never leaves a broken config in
// the editor.
func (m *model) applyForm() {
	candidate := *m.cfg
	candidate.Format = m.fFormat
	candidate.Background = m.fBackground
	if v, err := strconv.Atoi(m.fChromeHeight); err == nil {
		candidate.ChromeHeight = v
	}
	if v, err := strconv.Atoi(m.fDebounce); err == nil {
		candidate.SaveDebounceMS = v
	}
	if v, err := strconv.Atoi(m.fFrameRate); err == nil {
		candidate.FrameRate = v
	}
	onTop := m.fAlwaysOnTop
	resizable := m.fResizable
	candidate.AlwaysOnTop = &onTop
	candidate.Resizable = &resizable

	if err := candidate.Validate(); err != nil {
		m.lastError = err.Error()
		return
	}

	*m.cfg = candidate
	m.lastError = ""
	m.status = "edited (ctrl-s to save)"
	m.dirty = true
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.editing && m.form != nil {
		return m.viewEditing()
	}
	return m.viewDisplay()
}

func (m model) viewEditing() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		Render("Editing Clock Settings") +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("  (esc to cancel)")

	content := header + "\n\n" + m.form.View()

	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2)

	return style.Render(content)
}
