package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slingshot/internal/levels"
)

// LevelSelectModel lets the player pick the level to start from.
type LevelSelectModel struct {
	levels   []levels.Level
	table    table.Model
	help     help.Model
	keys     SelectorKeyMap
	width    int
	height   int
	chosen   int
	choosing bool
	quitting bool
}

// NewLevelSelectModel creates a selector over the given levels.
func NewLevelSelectModel(lvls []levels.Level, width, height int) LevelSelectModel {
	h := help.New()
	h.Width = width

	m := LevelSelectModel{
		levels:   lvls,
		help:     h,
		keys:     DefaultSelectorKeyMap(),
		width:    width,
		height:   height,
		chosen:   -1,
		choosing: true,
	}
	m.table = m.createTable()
	return m
}

func (m *LevelSelectModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "ID", Width: 16},
		{Title: "Name", Width: 20},
		{Title: "Targets", Width: 8},
		{Title: "Shots", Width: 6},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		shots := "-"
		if n := len(lvl.Projectiles); n > 0 {
			shots = fmt.Sprintf("%d", n)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.ID,
			lvl.Name,
			fmt.Sprintf("%d", lvl.TargetCount()),
			shots,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, min(len(rows)+1, m.height-8))),
	)

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

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.chosen = m.table.Cursor()
				m.choosing = false
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the selector.
func (m LevelSelectModel) View() string {
	if !m.choosing || m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("SLINGSHOT - SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.levels) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No levels found.")
		b.WriteString(centerText(tableStyle.Render(empty), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen level index, or -1 while choosing or after quitting.
func (m LevelSelectModel) Selected() int {
	if m.choosing || m.quitting {
		return -1
	}
	return m.chosen
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunLevelSelector shows the selector and returns the chosen level index,
// or -1 if the player quit.
func RunLevelSelector(lvls []levels.Level, width, height int) (int, error) {
	model := NewLevelSelectModel(lvls, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return -1, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return -1, nil
	}
	return m.Selected(), nil
}
