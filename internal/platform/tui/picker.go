package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cleancity/internal/model"
)

// PickerKeyMap defines the key bindings for the street picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for choosing the first street.
type PickerModel struct {
	levels   []model.Level
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	selected int // -1 until a street is chosen
	quitting bool
}

// levelRows fills one table row per level.
func levelRows(levels []model.Level) []table.Row {
	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			l.Name,
			fmt.Sprintf("%.0fs", l.TotalTime),
			strconv.Itoa(l.TrashCount),
			fmt.Sprintf("%.0f", l.PlayerSpeed),
		}
	}
	return rows
}

// NewPickerModel creates a picker over levels.
func NewPickerModel(levels []model.Level, width, height int) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		levels:   levels,
		help:     h,
		keys:     DefaultPickerKeyMap(),
		width:    width,
		height:   height,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Street", Width: 20},
		{Title: "Time", Width: 6},
		{Title: "Trash", Width: 6},
		{Title: "Speed", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(levelRows(m.levels)),
		table.WithFocused(true),
		table.WithHeight(max(min(len(m.levels)+1, m.height-6), 2)), // Leave room for title and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.table.Cursor()
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the chosen level index and whether one was chosen.
func (m PickerModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render("CLEAN CITY - choose a street"))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Pick shows the street picker and returns the chosen index. ok is false
// when the user quit without choosing.
func Pick(levels []model.Level, width, height int) (index int, ok bool, err error) {
	p := tea.NewProgram(NewPickerModel(levels, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}
	index, ok = final.(PickerModel).Selected()
	return index, ok, nil
}
