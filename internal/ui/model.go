package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bitgrid/cli/internal/grid"
	"github.com/bitgrid/cli/internal/units"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// chrome is the number of lines the page uses around the grid
const chrome = 9

// frameMsg is one animation frame for the session identified by token
type frameMsg struct {
	token uuid.UUID
	at    time.Time
}

// ModelOptions configures the interactive page
type ModelOptions struct {
	Grid          grid.Options
	Unit          units.Unit
	CapDisabled   bool
	Glyph         string
	FrameInterval time.Duration
	Log           zerolog.Logger
}

// screen is the grid.Display backing the page
type screen struct {
	squares         int64
	message         string
	severity        grid.Severity
	continueVisible bool
}

func (s *screen) Clear() {
	s.squares = 0
	s.message = ""
}

func (s *screen) Append(n int64) {
	s.squares += n
}

func (s *screen) ShowMessage(text string, sev grid.Severity) {
	s.message = text
	s.severity = sev
}

func (s *screen) SetContinueVisible(visible bool) {
	s.continueVisible = visible
}

// Model is the interactive bit grid page
type Model struct {
	ctrl   *grid.Controller
	screen *screen
	input  textinput.Model
	bar    progress.Model
	styles Styles

	unitIdx     int
	capDisabled bool
	glyph       string
	interval    time.Duration

	width  int
	height int
	now    time.Time
}

// NewModel creates the interactive page
func NewModel(opts ModelOptions) *Model {
	ti := textinput.New()
	ti.Placeholder = "quantity"
	ti.Prompt = ""
	ti.CharLimit = 19
	ti.Width = 20
	ti.Focus()

	unitIdx := 0
	for i, u := range units.All() {
		if u == opts.Unit {
			unitIdx = i
		}
	}

	if opts.Glyph == "" {
		opts.Glyph = "■"
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}

	s := &screen{}
	return &Model{
		ctrl:        grid.NewController(s, opts.Grid, opts.Log),
		screen:      s,
		input:       ti,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		styles:      DefaultStyles(),
		unitIdx:     unitIdx,
		capDisabled: opts.CapDisabled,
		glyph:       opts.Glyph,
		interval:    opts.FrameInterval,
		width:       80,
		height:      24,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Unit returns the selected unit
func (m *Model) Unit() units.Unit {
	return units.All()[m.unitIdx]
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(max(msg.Width-4, 10), 60)
		return m, nil

	case frameMsg:
		m.now = msg.at
		if m.ctrl.Frame(msg.token, msg.at) {
			return m, m.nextFrame(msg.token)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.ctrl.Cancel()
			return m, tea.Quit
		case "enter":
			return m, m.generate()
		case "tab":
			m.unitIdx = (m.unitIdx + 1) % len(units.All())
			return m, nil
		case "shift+tab":
			m.unitIdx = (m.unitIdx + len(units.All()) - 1) % len(units.All())
			return m, nil
		case "ctrl+d":
			m.capDisabled = !m.capDisabled
			return m, nil
		case "ctrl+n":
			return m, m.showMore()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) generate() tea.Cmd {
	// Errors are already on screen
	_ = m.ctrl.Generate(m.input.Value(), m.Unit().String(), m.capDisabled)
	if !m.ctrl.Running() {
		return nil
	}
	return m.nextFrame(m.ctrl.Token())
}

func (m *Model) showMore() tea.Cmd {
	if !m.screen.continueVisible || !m.ctrl.ShowMore() {
		return nil
	}
	return m.nextFrame(m.ctrl.Token())
}

func (m *Model) nextFrame(token uuid.UUID) tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg{token: token, at: t}
	})
}

// View implements tea.Model
func (m *Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("bitgrid"))
	b.WriteString(s.Faint.Render("  one square per bit"))
	b.WriteString("\n\n")

	capText := fmt.Sprintf("on (%d)", m.ctrl.Options().CapCeiling)
	if m.capDisabled {
		capText = "off"
	}
	u := m.Unit()
	fields := []string{
		s.Label.Render("Quantity ") + m.input.View(),
		s.Label.Render("Unit ") + s.Value.Render(fmt.Sprintf("‹ %s › %s", u, u.Name())),
		s.Label.Render("Cap ") + s.Value.Render(capText),
	}
	b.WriteString(strings.Join(fields, "   "))
	b.WriteString("\n\n")

	if g := RenderGrid(m.screen.squares, m.glyph, max(m.width, 1), max(m.height-chrome, 1), s); g != "" {
		b.WriteString(g)
		b.WriteString("\n\n")
	}

	if m.ctrl.Running() {
		b.WriteString(m.bar.ViewAs(m.ctrl.Progress(m.now)))
		b.WriteString("\n")
	}

	if m.screen.message != "" {
		b.WriteString(s.RenderMessage(m.screen.message, m.screen.severity))
		b.WriteString("\n")
	}

	help := []string{"enter generate", "tab unit", "ctrl+d toggle cap"}
	if m.screen.continueVisible {
		help = append(help, "ctrl+n show more")
	}
	help = append(help, "esc quit")
	b.WriteString(s.Help.Render(strings.Join(help, " • ")))

	return b.String()
}
