package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// DefaultPollInterval is used when Options leaves PollInterval unset.
const DefaultPollInterval = 20 * time.Millisecond

// boostHold is how long a heading key counts as held after its last
// repeat. Terminals report no key releases, only auto-repeat presses.
const boostHold = 150 * time.Millisecond

// ResultRecorder stores finished sessions. Implemented by *storage.Store.
type ResultRecorder interface {
	RecordResult(ctx context.Context, r storage.Result) (int64, error)
}

// Options configures a Model.
type Options struct {
	PollInterval time.Duration
	Recorder     ResultRecorder // optional
	Logger       *log.Logger    // optional
	ShowHelp     bool
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game    registry.Game
	booster registry.Booster // nil when the game has no boost
	keys    GameKeyMap
	help    help.Model
	screen  *core.Screen
	opts    Options
	logger  *log.Logger
	now     func() time.Time

	lastBoost time.Time
	recorded  bool // result of the current round already stored
	quitting  bool
}

// NewModel creates a model around an already created session.
func NewModel(game registry.Game, opts Options) Model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	booster, _ := game.(registry.Booster)

	return Model{
		game:    game,
		booster: booster,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(screenW, screenH),
		opts:    opts,
		logger:  logger.With("game", game.ID(), "session", game.SessionID()),
		now:     time.Now,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.PollInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || m.game.Status() == core.StatusError {
		m.quitting = true
		return m, tea.Quit
	}

	// q on a finished round leaves instead of terminating again.
	if msg.String() == "q" && m.game.Status().Finished() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.booster != nil && m.booster.BoostOrNot(msg.String()) {
		m.lastBoost = m.now()
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		return m, nil
	}
	m.game.ApplyCommand(cmd)
	m.afterStep()
	return m, nil
}

// handleTick runs one poll: boost hold, simulation step, result bookkeeping.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.booster != nil {
		hold := !m.lastBoost.IsZero() && m.now().Sub(m.lastBoost) < boostHold
		m.booster.SpeedBoost(hold)
	}

	m.game.Tick()
	m.afterStep()

	return m, tickCmd(m.opts.PollInterval)
}

// afterStep stores the result once per finished round and re-arms after
// a restart.
func (m *Model) afterStep() {
	st := m.game.Status()
	if !st.Finished() {
		m.recorded = false
		return
	}
	if m.recorded || st == core.StatusError {
		return
	}
	m.recorded = true

	info := m.game.Snapshot()
	m.logger.Info("round finished", "status", st, "score", info.Score, "level", info.Level)
	if m.opts.Recorder == nil {
		return
	}
	_, err := m.opts.Recorder.RecordResult(context.Background(), storage.Result{
		GameID:    m.game.ID(),
		SessionID: m.game.SessionID(),
		Score:     info.Score,
		Level:     info.Level,
		Outcome:   st.String(),
	})
	if err != nil {
		m.logger.Warn("recording result", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game.Status() == core.StatusError {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
		text := "game could not start"
		if err := m.game.Err(); err != nil {
			text += ": " + err.Error()
		}
		return errStyle.Render(text) + "\n\npress any key to exit\n"
	}

	DrawGame(m.screen, m.game.Title(), m.game.Snapshot())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.opts.ShowHelp {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// Quitting reports whether the user left the game.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
