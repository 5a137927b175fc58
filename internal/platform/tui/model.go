package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnow/internal/core"
	"github.com/vovakirdan/termsnow/internal/registry"
	"github.com/vovakirdan/termsnow/internal/storage"
)

// WatchModel is the Bubble Tea model for running a scene.
type WatchModel struct {
	scene        registry.Scene
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	inputFrame   core.InputFrame
	stats        core.SceneStats
	startedAt    time.Time
	quitting     bool
	backToMenu   bool
	sessionSaved bool
}

// NewWatchModel creates a new Bubble Tea model for the given scene.
func NewWatchModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) WatchModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return WatchModel{
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	// Initialize the scene
	m.scene.Reset(m.config)

	return tea.Batch(
		tea.SetWindowTitle(m.scene.Caption()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu (only meaningful inside a session/menu flow)
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.saveSession()
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The simulation runs in canvas units, so a resize only changes the
// projection; the scene keeps running.
func (m WatchModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.scene.Step(m.inputFrame)
	m.stats = result.Stats

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveSession records the finished watch session. Best effort: a failed save
// never blocks quitting.
func (m *WatchModel) saveSession() {
	if m.sessionSaved || m.store == nil || m.stats.Frames == 0 {
		return
	}
	seconds := int(time.Since(m.startedAt) / time.Second)
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(m.scene.ID(), seconds, m.stats.Frames, m.stats.DriftChanges)
	m.sessionSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *WatchModel) saveScreenshot() {
	// Render current state
	m.scene.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".termsnow", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// BackToMenu returns true if the user asked to return to the scene picker.
func (m WatchModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user asked to quit entirely.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	// Render scene to screen buffer
	m.scene.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewWatchModel(scene, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
