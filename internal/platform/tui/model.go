package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the host around a game.
type Options struct {
	Keys          KeyMap
	MoveCooldown  int // ticks during which moves are ignored after one is applied
	ScreenshotDir string
	Logger        *log.Logger
}

// Model is the Bubble Tea model hosting one 2048 game.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	help       help.Model
	inputFrame core.InputFrame
	cooldown   int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // last line holds the help footer
		config:     cfg,
		opts:       opts,
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the first game and the tick loop.
func (m Model) Init() tea.Cmd {
	if m.game.State() == t2048.StateInitialized {
		m.game.NewGame()
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey records the key's action for the next tick. Quit, help and
// screenshots act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.opts.Keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
	}
	return m, nil
}

// handleResize keeps the game running and only resizes the buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

func (m *Model) resizeScreen() {
	footer := lipgloss.Height(m.help.View(m.opts.Keys))
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-footer)
}

// handleTick applies the actions collected since the last tick.
// At most one move is applied per tick, and none while cooling down.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	coolingDown := m.cooldown > 0
	if coolingDown {
		m.cooldown--
	}

	switch {
	case m.inputFrame.Has(core.ActionNewGame):
		m.game.NewGame()
		m.cooldown = 0
	case m.inputFrame.Has(core.ActionUndo):
		m.game.Undo()
	case m.inputFrame.Has(core.ActionForceSpawn):
		m.game.ForceSpawn(t2048.WinValue)
	case !coolingDown:
		if dir, ok := m.pendingMove(); ok {
			m.game.ApplyMove(dir)
			m.cooldown = m.opts.MoveCooldown
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// pendingMove returns the direction requested this tick, if any.
func (m Model) pendingMove() (t2048.Direction, bool) {
	switch {
	case m.inputFrame.Has(core.ActionUp):
		return t2048.DirUp, true
	case m.inputFrame.Has(core.ActionDown):
		return t2048.DirDown, true
	case m.inputFrame.Has(core.ActionLeft):
		return t2048.DirLeft, true
	case m.inputFrame.Has(core.ActionRight):
		return t2048.DirRight, true
	}
	return 0, false
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("2048_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.opts.Keys)),
	)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *t2048.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
