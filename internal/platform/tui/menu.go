package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkoshelev/tui-survivor/internal/core"
	"github.com/vkoshelev/tui-survivor/internal/storage"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceContinue
	MenuChoiceNewGame
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// MenuItem is a selectable main menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

var menuDimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

var menuActiveStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	bestRound      int
	keyMapper      *KeyMapper
	quitting       bool
	selected       MenuChoice
	openScoreboard bool
}

// NewMenuModel creates the main menu. Continue is offered only when a
// usable save exists.
func NewMenuModel(scores *storage.Store, saves survivor.SaveStore, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, 4)

	if saves != nil {
		if rec, err := saves.Load(); err == nil && rec != nil {
			items = append(items, MenuItem{
				Choice: MenuChoiceContinue,
				Title:  fmt.Sprintf("Continue  (world %d, round %d)", rec.World, rec.Round),
			})
		}
	}
	items = append(items,
		MenuItem{Choice: MenuChoiceNewGame, Title: "New Game"},
		MenuItem{Choice: MenuChoiceScoreboard, Title: "Scoreboard"},
		MenuItem{Choice: MenuChoiceQuit, Title: "Quit"},
	)

	best := 0
	if scores != nil {
		if b, err := scores.BestRound(); err == nil {
			best = b
		}
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		bestRound: best,
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
		switch m.items[m.cursor].Choice {
		case MenuChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuChoiceScoreboard:
			m.openScoreboard = true
		default:
			m.selected = m.items[m.cursor].Choice
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(menuTitleStyle.Render("S U R V I V O R"), m.width))
	b.WriteString("\n\n")

	subtitle := "Outlast every round"
	if m.bestRound > 0 {
		subtitle = fmt.Sprintf("Best run: round %d", m.bestRound)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen menu entry, or MenuChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width. Styled text is measured
// by its visible width, not its byte length.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
