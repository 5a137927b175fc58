package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnow/internal/core"
	"github.com/vovakirdan/termsnow/internal/registry"
	"github.com/vovakirdan/termsnow/internal/storage"
)

// MenuItem represents a selectable scene in the picker.
type MenuItem struct {
	SceneID string
	Title   string
}

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	width        int
	height       int
	store        *storage.Store
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	selected     *MenuItem // Set when user selects a scene
	openSessions bool      // True if user pressed Tab for the session board
}

// NewMenuModel creates a new scene picker model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	scenes := registry.List()
	items := make([]MenuItem, 0, len(scenes))

	for _, s := range scenes {
		items = append(items, MenuItem{
			SceneID: s.ID,
			Title:   s.Title,
		})
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the scene
		}

	case MenuActionSessions:
		m.openSessions = true
		return m, tea.Quit // Exit menu to show the session board
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  T E R M S N O W  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Pick a scene"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Scene list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Watch  |  Tab: Sessions  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText pads a line so it renders horizontally centered.
func centerText(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsSessions returns true if the user asked for the session board.
func (m MenuModel) WantsSessions() bool {
	return m.openSessions
}

// Config returns the (possibly resized) runtime config.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult describes how a standalone menu run ended.
type MenuResult struct {
	SceneID       string
	Quit          bool
	WantsSessions bool
	Config        core.RuntimeConfig
}

// RunMenu shows the scene picker and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	menu, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true, Config: cfg}, nil
	}

	result := MenuResult{
		Quit:          menu.IsQuitting(),
		WantsSessions: menu.WantsSessions(),
		Config:        menu.Config(),
	}
	if sel := menu.Selected(); sel != nil {
		result.SceneID = sel.SceneID
	}
	return result, nil
}
