package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vkoshelev/tui-survivor/internal/core"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

// GameModel is the Bubble Tea model driving one run. It assembles an
// input frame from key and mouse events, steps the simulation on each
// tick message, and renders the game's screen buffer.
type GameModel struct {
	game      *survivor.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	frame     core.InputFrame
	logger    *log.Logger
	quitting  bool
	finished  bool // player acknowledged the game over screen
	abandoned bool // player backed out mid-run
}

// NewGameModel creates a model around a prepared game. The caller must
// have called Reset or Resume on the game already.
func NewGameModel(game *survivor.Game, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		// The arena keeps its starting size; only the view resizes, so
		// a mid-run resize never perturbs the simulation.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The shop claims the digit keys while the break is running
	if m.game.InBreak() {
		switch key {
		case "1", "2", "3", "4":
			m.game.Buy(survivor.UpgradeKind(key[0] - '1'))
			return m, nil
		}
	}

	if m.game.Over() {
		switch key {
		case "enter":
			m.finished = true
			return m, nil
		case "b", "esc":
			m.finished = true
			return m, nil
		}
	}
	if m.game.Paused() && key == "b" {
		m.abandoned = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restart launches a fresh run
	if m.frame.Has(core.ActionRestart) && m.game.Over() {
		seed := m.config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		m.game.Reset(seed)
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	res := m.game.Step(m.frame)
	for _, ev := range res.Events {
		switch ev.Kind {
		case survivor.EventRoundCleared:
			m.logger.Info("round cleared", "world", ev.World, "round", ev.Round)
		case survivor.EventWorldCompleted:
			m.logger.Info("world completed", "world", ev.World)
		case survivor.EventGameOver:
			m.logger.Info("run ended", "world", ev.World, "round", ev.Round)
		}
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game exposes the underlying simulation, for the game over flow.
func (m GameModel) Game() *survivor.Game {
	return m.game
}

// Finished reports that the player left the game over overlay.
func (m GameModel) Finished() bool {
	return m.finished
}

// Abandoned reports that the player backed out of a paused run.
func (m GameModel) Abandoned() bool {
	return m.abandoned
}

// IsQuitting reports a request to quit the whole session.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
