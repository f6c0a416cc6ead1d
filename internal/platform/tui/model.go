package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/intro"
	"github.com/vovakirdan/cleancity/internal/session"
)

// DefaultHold is how long a key press keeps its direction held.
const DefaultHold = 200 * time.Millisecond

// Options configures the play screen.
type Options struct {
	Runtime core.RuntimeConfig
	Hold    time.Duration
	Logger  *log.Logger
}

// Model is the Bubble Tea model for playing a session.
type Model struct {
	session *session.Session
	intro   *intro.Slideshow // nil when the intro is disabled
	keys    KeyMap
	help    help.Model
	held    *HeldKeys
	frame   core.InputFrame
	screen  *core.Screen
	config  core.RuntimeConfig
	logger  *log.Logger

	last     time.Time
	quitting bool
}

// NewModel creates a play model. show may be nil to start straight away.
func NewModel(sess *session.Session, show *intro.Slideshow, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	hold := opts.Hold
	if hold <= 0 {
		hold = DefaultHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		session: sess,
		intro:   show,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(hold),
		frame:   core.NewInputFrame(),
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH, 1)),
		config:  cfg,
		logger:  logger,
	}
}

// playfieldHeight leaves room for the HUD and the help bar.
func playfieldHeight(screenH, helpLines int) int {
	return max(screenH-hudLines-helpLines, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if b, ok := m.keys.Button(msg); ok {
		m.held.Press(b, now)
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch cmd := m.keys.Command(msg); cmd {
	case core.CommandNone:
	case core.CommandQuit:
		m.quitting = true
		return m, tea.Quit
	default:
		m.frame.Set(cmd)
	}
	return m, nil
}

// handleResize tracks the terminal size. The world keeps its size; the
// playfield is rescaled on the next View.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.config.FrameDelta()
	if !m.last.IsZero() {
		delta = now.Sub(m.last).Seconds()
	}
	m.last = now

	if m.introActive() {
		if m.frame.Has(core.CommandSkip) {
			m.intro.Skip()
		} else {
			m.intro.Update(delta)
		}
		if m.intro.Done() {
			m.logger.Debug("intro finished")
			m.held.Release()
		}
	} else {
		m.held.Sample(now, &m.frame)
		m.session.Step(delta, m.frame)
	}

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) introActive() bool {
	return m.intro != nil && !m.intro.Done()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.introActive() {
		return renderIntro(m.intro, m.config.ScreenW, m.config.ScreenH)
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	if h := playfieldHeight(m.config.ScreenH, lipgloss.Height(helpView)); h != m.screen.Height() || m.config.ScreenW != m.screen.Width() {
		m.screen.Resize(m.config.ScreenW, h)
	}

	snap := m.session.Snapshot()
	drawWorld(m.screen, snap)
	if lines, c, ok := bannerFor(snap); ok {
		drawBanner(m.screen, lines, c)
	}

	return renderHUD(snap) + "\n" + RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for the session.
func Run(sess *session.Session, show *intro.Slideshow, opts Options) error {
	model := NewModel(sess, show, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
