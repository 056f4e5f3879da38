package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
	"github.com/vovakirdan/tui-slingshot/internal/sound"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the slingshot game.
type Model struct {
	game       *slingshot.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	player     sound.Player
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg holds
// the full terminal size; the game gets the rows above the help line.
func NewModel(game *slingshot.Game, cfg core.RuntimeConfig, logger *log.Logger, player sound.Player) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == nil {
		player = sound.Silent{}
	}
	h := help.New()
	h.Width = cfg.ScreenW

	gameCfg := cfg
	gameCfg.ScreenH = max(1, cfg.ScreenH-helpRows)

	return &Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		config:     gameCfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		logger:     logger,
		player:     player,
	}
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logSession("session started")

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the simulation and only changes the projection.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(1, msg.Height-helpRows)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = h
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	restart := m.inputFrame.Has(core.ActionRestart)
	level := m.game.LevelIndex()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.game.LevelIndex() != level:
		m.logSession("next level")
	case restart:
		m.logSession("level restarted")
	}
	m.logEvents(result.Events)
	sound.PlayEvents(m.player, result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logSession(msg string) {
	lvl := m.game.Level()
	m.logger.Info(msg, "level", lvl.ID, "name", lvl.Name, "projectiles", m.game.Stats().ProjectilesRemaining)
}

func (m *Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLaunch:
			m.logger.Info("launch", "projectile", ev.Detail, "fx", ev.Force.X, "fy", ev.Force.Y)
		case core.EventTargetDestroyed:
			m.logger.Info("target destroyed", "kind", ev.Detail, "points", ev.Points)
		case core.EventProjectileReady:
			m.logger.Debug("projectile ready", "projectile", ev.Detail)
		case core.EventWon:
			m.logger.Info("level won", "score", ev.Points, "stars", ev.Stars)
		case core.EventLost:
			m.logger.Info("level lost", "score", m.gameState.Score)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".slingshot", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.game.Level().ID, timestamp)
	path := filepath.Join(dir, filename)

	var sb strings.Builder
	for y := range m.screen.Height() {
		sb.WriteString(strings.TrimRight(m.screen.Row(y), " "))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *slingshot.Game, cfg core.RuntimeConfig, logger *log.Logger, player sound.Player) error {
	model := NewModel(game, cfg, logger, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release
	)

	_, err := p.Run()
	return err
}
