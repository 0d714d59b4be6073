package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

const maxScores = 100

// ScoreSource provides the recorded results. Implemented by *storage.Store.
type ScoreSource interface {
	TopScores(ctx context.Context, gameID string, limit int) ([]storage.ScoreEntry, error)
	GameStats(ctx context.Context, gameID string) (*storage.GameStats, error)
}

// OutcomeFilter narrows the result list to one round outcome.
type OutcomeFilter int

// Filters cycled by the f key.
const (
	FilterAll OutcomeFilter = iota
	FilterWins
	FilterGameOvers
)

func (f OutcomeFilter) String() string {
	switch f {
	case FilterWins:
		return "wins"
	case FilterGameOvers:
		return "game overs"
	default:
		return "all rounds"
	}
}

func (f OutcomeFilter) match(outcome string) bool {
	switch f {
	case FilterWins:
		return outcome == core.StatusWin.String()
	case FilterGameOvers:
		return outcome == core.StatusGameOver.String()
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Game   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Game, k.Filter, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Game, k.Filter}, {k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Game:   key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "switch game")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the recorded rounds of one game at a time with a
// summary card and an outcome filter.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	filter    OutcomeFilter
	store     ScoreSource
	results   []storage.ScoreEntry // unfiltered, best first
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Level", Width: 5},
			{Title: "Outcome", Width: 9},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	m.table.SetStyles(s)

	m.reload()
	return m
}

func (m ScoreboardModel) tableHeight() int {
	return max(m.height-12, 5) // title, card, help
}

// reload fetches results and stats for the selected game.
func (m *ScoreboardModel) reload() {
	m.results, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		ctx := context.Background()
		id := m.games[m.current].ID
		if results, err := m.store.TopScores(ctx, id, maxScores); err == nil {
			m.results = results
		}
		if stats, err := m.store.GameStats(ctx, id); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

// refreshRows applies the outcome filter. Ranks stay those of the
// unfiltered list.
func (m *ScoreboardModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.results))
	for i, r := range m.results {
		if !m.filter.match(r.Outcome) {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Rows returns the rows currently shown.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Game):
			if len(m.games) > 0 {
				step := 1
				if msg.String() == "left" {
					step = len(m.games) - 1
				}
				m.current = (m.current + step) % len(m.games)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % 3
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(m.tableHeight())
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(accent.Render("RESULTS"), m.width))
	b.WriteString("\n\n")

	if len(m.games) == 0 {
		b.WriteString(centerText(dim.Render("No games registered."), m.width))
		return b.String()
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = accent.Render("[" + g.Title + "]")
		} else {
			tabs[i] = dim.Render(" " + g.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, "  "), m.width))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card.Render(m.summary())))
	b.WriteString("\n")
	b.WriteString(centerText(dim.Render("showing "+m.filter.String()), m.width))
	b.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		b.WriteString(centerText(dim.Italic(true).Render("Nothing recorded here yet."), m.width))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// summary renders the stats card for the selected game.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no rounds played"
	}
	st := m.stats
	losses := st.GamesCount - st.Wins
	return fmt.Sprintf("rounds %d   wins %d   game overs %d\nbest %d   average %.0f   last %s",
		st.GamesCount, st.Wins, losses, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store ScoreSource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
