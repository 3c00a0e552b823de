package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkoshelev/tui-survivor/internal/storage"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

var gameOverTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("9"))

var gameOverRankStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("10"))

// GameOverModel shows the run summary, asks for a name, and submits the
// run to the leaderboard.
type GameOverModel struct {
	summary   survivor.RunSummary
	store     *storage.Store
	input     textinput.Model
	width     int
	height    int
	submitted bool
	rank      int
	failed    bool // submission errored or no leaderboard available
	done      bool
	quitting  bool
}

// NewGameOverModel creates the game over screen. The username prefills
// the name field.
func NewGameOverModel(sum survivor.RunSummary, store *storage.Store, username string, width, height int) GameOverModel {
	ti := textinput.New()
	ti.Placeholder = "anonymous"
	ti.CharLimit = 20
	ti.Width = 24
	ti.SetValue(username)
	ti.Focus()

	return GameOverModel{
		summary: sum,
		store:   store,
		input:   ti,
		width:   width,
		height:  height,
	}
}

// Init starts the cursor blink.
func (m GameOverModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m GameOverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.done = true
			return m, nil
		case "enter":
			if m.submitted {
				m.done = true
				return m, nil
			}
			m.submit()
			return m, nil
		default:
			if m.submitted {
				m.done = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the run to the leaderboard.
func (m *GameOverModel) submit() {
	m.submitted = true
	if m.store == nil {
		m.failed = true
		return
	}

	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		name = "anonymous"
	}

	rank, err := m.store.Submit(storage.LeaderboardEntry{
		Name:            name,
		Mode:            m.summary.Mode.String(),
		HighestRound:    m.summary.HighestRound,
		Kills:           m.summary.Kills,
		TimeSurvivedSec: m.summary.TimeSurvivedSec,
	})
	if err != nil {
		m.failed = true
		return
	}
	m.rank = rank
}

// View renders the game over screen.
func (m GameOverModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(gameOverTitleStyle.Render("GAME OVER"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%s  |  Round %d  |  %d kills  |  %s survived",
		modeLabel(m.summary.Mode), m.summary.HighestRound, m.summary.Kills,
		formatTime(m.summary.TimeSurvivedSec))
	b.WriteString(centerText(stats, m.width))
	b.WriteString("\n\n")

	if !m.submitted {
		b.WriteString(centerText("Name: "+m.input.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(menuDimStyle.Render("Enter: submit  |  Esc: skip"), m.width))
	} else {
		var verdict string
		switch {
		case m.failed:
			verdict = "Score not recorded"
		case m.rank > 0:
			verdict = gameOverRankStyle.Render(fmt.Sprintf("Ranked #%d on the leaderboard!", m.rank))
		default:
			verdict = "Didn't make the top 10 this time"
		}
		b.WriteString(centerText(verdict, m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(menuDimStyle.Render("Press any key to continue"), m.width))
	}
	b.WriteString("\n")

	return b.String()
}

// Done reports that the screen was dismissed.
func (m GameOverModel) Done() bool {
	return m.done
}

// IsQuitting reports a request to quit the whole session.
func (m GameOverModel) IsQuitting() bool {
	return m.quitting
}

// modeLabel returns the display name of a game mode.
func modeLabel(mode survivor.GameMode) string {
	if mode == survivor.ModeEndless {
		return "Endless"
	}
	return "Campaign"
}

// formatTime renders seconds as m:ss.
func formatTime(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
