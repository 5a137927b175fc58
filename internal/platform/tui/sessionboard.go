package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnow/internal/registry"
	"github.com/vovakirdan/termsnow/internal/storage"
)

// maxSessions is the most sessions loaded into the board at once.
const maxSessions = 100

// SessionBoardKeyMap defines the key bindings for the session board.
type SessionBoardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.PrevScene, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SessionBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScene, k.PrevScene},
		{k.Back, k.Quit},
	}
}

// DefaultSessionBoardKeyMap returns default key bindings.
func DefaultSessionBoardKeyMap() SessionBoardKeyMap {
	return SessionBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scene"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionBoardModel is the Bubble Tea model for the session history screen.
type SessionBoardModel struct {
	scenes      []registry.SceneInfo
	sceneCursor int
	store       *storage.Store
	sessions    []storage.SessionEntry
	table       table.Model
	help        help.Model
	keys        SessionBoardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewSessionBoardModel creates a new session board model.
func NewSessionBoardModel(store *storage.Store, width, height int) SessionBoardModel {
	keys := DefaultSessionBoardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := SessionBoardModel{
		scenes: registry.List(),
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()

	if len(m.scenes) > 0 {
		m.loadSessions(m.scenes[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *SessionBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Duration", Width: 10},
		{Title: "Frames", Width: 10},
		{Title: "Gusts", Width: 7},
	}

	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the session history for the given scene ID.
func (m *SessionBoardModel) loadSessions(sceneID string) {
	if m.store == nil {
		m.sessions = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.RecentSessions(sceneID, maxSessions)
	if err != nil {
		m.sessions = nil
	} else {
		m.sessions = sessions
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *SessionBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			formatDuration(s.Seconds),
			fmt.Sprintf("%d", s.Frames),
			fmt.Sprintf("%d", s.DriftChanges),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), seconds%60)
}

// Init initializes the session board model.
func (m SessionBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session board.
func (m SessionBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScene):
			if len(m.scenes) > 0 {
				m.sceneCursor = (m.sceneCursor + 1) % len(m.scenes)
				m.loadSessions(m.scenes[m.sceneCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevScene):
			if len(m.scenes) > 0 {
				m.sceneCursor--
				if m.sceneCursor < 0 {
					m.sceneCursor = len(m.scenes) - 1
				}
				m.loadSessions(m.scenes[m.sceneCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session board.
func (m SessionBoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		MarginBottom(1)

	title := "WATCH SESSIONS"
	if len(m.scenes) > 0 {
		title = fmt.Sprintf("WATCH SESSIONS - %s", m.scenes[m.sceneCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString(centerText("No sessions recorded yet.", m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunSessionBoard shows the interactive session history.
// Returns true if the user pressed back (rather than quit).
func RunSessionBoard(store *storage.Store, width, height int) (bool, error) {
	model := NewSessionBoardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	if board, ok := final.(SessionBoardModel); ok {
		return board.goingBack, nil
	}
	return false, nil
}
