package watch

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/clock"
	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/display"
	"github.com/muurk/fuzzyplus/internal/face"
	"github.com/muurk/fuzzyplus/internal/logging"
)

// Messages delivered on the event loop
type (
	minuteTickMsg time.Time

	configMsg struct {
		source string
		update config.Update
	}

	savedMsg struct {
		err error
	}
)

// Options configures the watch program.
type Options struct {
	// Clock defaults to the wall clock
	Clock clock.Clock

	// Testing enables the schedule test hook and disables minute ticks
	Testing bool

	// Registry seeds BeforeText and receives companion updates. Nil
	// disables persistence.
	Registry     *config.Registry
	RegistryPath string

	// Companion is the endpoint address shown in the status line, if any
	Companion string
}

// Model is the Bubble Tea model running the face. It owns the controller
// and the canvas; all face events run inside Update.
type Model struct {
	controller *face.Controller
	canvas     *display.Canvas
	clock      clock.Clock
	schedule   *face.Schedule

	registry     *config.Registry
	registryPath string
	companion    string

	keys   keyMap
	help   help.Model
	width  int
	height int
	status string
}

// New creates the model and draws the first frame.
func New(opts Options) (Model, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}

	m := Model{
		canvas:       display.NewCanvas(),
		clock:        clk,
		registry:     opts.Registry,
		registryPath: opts.RegistryPath,
		companion:    opts.Companion,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}

	var faceOpts []face.Option
	if opts.Testing {
		m.schedule = face.DefaultSchedule()
		faceOpts = append(faceOpts, face.WithSchedule(m.schedule))
	}
	if m.registry != nil {
		faceOpts = append(faceOpts, face.WithBeforeText(m.registry.BeforeText()))
	}

	controller, err := face.NewController(m.canvas, clk, faceOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create face: %w", err)
	}
	m.controller = controller
	m.controller.Start()

	return m, nil
}

// Init starts the minute subscription unless the test hook is on.
func (m Model) Init() tea.Cmd {
	if m.controller.Testing() {
		return nil
	}
	return tick()
}

// tick fires on the next wall-clock minute boundary.
func tick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return minuteTickMsg(t)
	})
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case minuteTickMsg:
		m.controller.MinuteTick(time.Time(msg))
		return m, tick()

	case configMsg:
		return m.configure(msg)

	case savedMsg:
		if msg.err != nil {
			logging.Warn("Failed to save configuration", zap.Error(msg.err))
			m.status = "settings not saved"
		} else {
			m.status = "settings saved"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tap):
			m.controller.Tap()
		}
	}

	return m, nil
}

func (m Model) configure(msg configMsg) (tea.Model, tea.Cmd) {
	m.controller.Configure(msg.update)
	m.status = "settings from " + msg.source

	if m.registry == nil || !m.registry.Apply(msg.update, m.clock.Now()) {
		return m, nil
	}
	if m.registryPath == "" {
		return m, nil
	}

	// Save a copy so the write does not race later updates
	snapshot := *m.registry
	faceOpts := *m.registry.Face
	snapshot.Face = &faceOpts
	path := m.registryPath

	return m, func() tea.Msg {
		return savedMsg{err: snapshot.Save(path)}
	}
}

// View renders the face, the status line and help.
func (m Model) View() string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		display.RenderFace(m.canvas),
		m.statusLine(),
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return display.Center(m.width, m.height, block)
	}
	return block
}

func (m Model) statusLine() string {
	var line string
	if m.schedule != nil {
		frame := m.controller.Frame()
		line = display.TestingStyle.Render(
			fmt.Sprintf("TEST %d/%d", m.schedule.Position(), m.schedule.Len()),
		)
		if frame.HasDetail() {
			line += display.StatusStyle.Render("  detail")
		}
	} else if m.controller.DetailVisible() {
		line = display.StatusStyle.Render("detail")
	}

	if m.companion != "" {
		line += display.StatusStyle.Render("  companion " + m.companion)
	}
	if m.status != "" {
		line += display.StatusStyle.Render("  " + m.status)
	}
	return line
}

// Controller exposes the face state, mainly for tests and the CLI.
func (m Model) Controller() *face.Controller {
	return m.controller
}

// Canvas returns the canvas the face draws on.
func (m Model) Canvas() *display.Canvas {
	return m.canvas
}

// ConfigSink returns a function that posts companion updates onto p's
// event loop. It is safe to call from any goroutine.
func ConfigSink(p *tea.Program) func(source string, update config.Update) {
	return func(source string, update config.Update) {
		p.Send(configMsg{source: source, update: update})
	}
}

// Run runs the watch program until the user quits. attach is called with
// the program before its loop starts, for wiring the companion endpoint;
// the cleanup it returns runs after the loop exits.
func Run(m Model, attach func(p *tea.Program) (func(), error)) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	defer m.controller.Close()

	if attach != nil {
		cleanup, err := attach(p)
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer cleanup()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch program failed: %w", err)
	}
	return nil
}
