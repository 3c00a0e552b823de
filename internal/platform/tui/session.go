package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/core"
	"github.com/vkoshelev/tui-survivor/internal/storage"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

// sessionState tracks which screen the session is showing.
type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateGameOver
	stateScores
)

// SessionModel manages the full session flow: menu -> game -> game over
// -> menu. This is the top-level model for both local and SSH play.
type SessionModel struct {
	catalog  config.WorldCatalog
	scores   *storage.Store
	saves    survivor.SaveStore
	config   core.RuntimeConfig
	username string
	logger   *log.Logger

	state      sessionState
	menu       MenuModel
	gameModel  *GameModel
	gameOver   *GameOverModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(catalog config.WorldCatalog, scores *storage.Store, saves survivor.SaveStore, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		catalog:  catalog,
		scores:   scores,
		saves:    saves,
		config:   cfg,
		username: username,
		logger:   logger,
		menu:     NewMenuModel(scores, saves, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		if m.gameModel != nil {
			return m.updateGame(msg)
		}
	case stateGameOver:
		if m.gameOver != nil {
			return m.updateGameOver(msg)
		}
	case stateScores:
		if m.scoreboard != nil {
			return m.updateScores(msg)
		}
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the menu is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		scoreboard := NewScoreboardModel(m.scores, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &scoreboard
		m.state = stateScores
		return m, m.scoreboard.Init()
	}

	switch m.menu.Selected() {
	case MenuChoiceContinue:
		return m.startGame(true)
	case MenuChoiceNewGame:
		return m.startGame(false)
	}

	return m, cmd
}

// startGame builds a fresh simulation and switches to the game screen.
// With resume set, the last committed save seeds the starting round.
func (m SessionModel) startGame(resume bool) (tea.Model, tea.Cmd) {
	game := survivor.New(m.catalog, m.config, survivor.Options{
		Save:   m.saves,
		Logger: m.logger,
	})

	seed := m.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if resume && m.saves != nil {
		rec, err := m.saves.Load()
		if err != nil {
			m.logger.Warn("could not load save", "error", err)
		}
		game.Resume(seed, rec)
	} else {
		game.Reset(seed)
	}

	gameModel := NewGameModel(game, m.config, m.logger)
	m.gameModel = &gameModel
	m.state = stateGame

	return m, m.gameModel.Init()
}

// updateGame handles updates while a run is in progress.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Paused run abandoned: back to menu without touching the leaderboard
	if m.gameModel.Abandoned() {
		return m.backToMenu()
	}

	// Run finished: collect the summary and move to name entry
	if m.gameModel.Finished() {
		gameOver := NewGameOverModel(
			m.gameModel.Game().Summary(),
			m.scores,
			m.username,
			m.config.ScreenW,
			m.config.ScreenH,
		)
		m.gameOver = &gameOver
		m.gameModel = nil
		m.state = stateGameOver
		return m, m.gameOver.Init()
	}

	return m, cmd
}

// updateGameOver handles updates on the game over screen.
func (m SessionModel) updateGameOver(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameOver.Update(msg)
	if gameOverModel, ok := newModel.(GameOverModel); ok {
		m.gameOver = &gameOverModel
	}

	if m.gameOver.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameOver.Done() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates on the scoreboard screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if scoreboardModel, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &scoreboardModel
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so the continue entry reflects the
// latest save.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.gameModel = nil
	m.gameOver = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.scores, m.saves, m.config)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stateGameOver:
		if m.gameOver != nil {
			return m.gameOver.View()
		}
	case stateScores:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}
	return m.menu.View()
}

// Run starts a local terminal session and blocks until the player quits.
func Run(catalog config.WorldCatalog, scores *storage.Store, saves survivor.SaveStore, cfg core.RuntimeConfig, username string, logger *log.Logger) error {
	model := NewSessionModel(catalog, scores, saves, cfg, username, logger)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
