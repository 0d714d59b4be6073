package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

func init() {
	for _, id := range []string{"board_a", "board_b"} {
		registry.Register(id, id, func(core.RuntimeConfig) registry.Game { return nil })
	}
}

type fakeSource map[string][]storage.ScoreEntry

func (f fakeSource) TopScores(_ context.Context, gameID string, limit int) ([]storage.ScoreEntry, error) {
	r := f[gameID]
	if len(r) > limit {
		r = r[:limit]
	}
	return r, nil
}

func (f fakeSource) GameStats(_ context.Context, gameID string) (*storage.GameStats, error) {
	st := &storage.GameStats{GameID: gameID}
	for _, e := range f[gameID] {
		st.GamesCount++
		if e.Outcome == "Win" {
			st.Wins++
		}
		st.HighScore = max(st.HighScore, e.Score)
	}
	return st, nil
}

func boardFor(t *testing.T, src ScoreSource) ScoreboardModel {
	t.Helper()
	m := NewScoreboardModel(src, 80, 30)
	for m.games[m.current].ID != "board_a" {
		m.current++
		require.Less(t, m.current, len(m.games))
	}
	m.reload()
	return m
}

func press(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return nm
}

func TestScoreboardFilterKeepsRanks(t *testing.T) {
	played := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	src := fakeSource{"board_a": {
		{Score: 196, Level: 10, Outcome: "Win", CreatedAt: played},
		{Score: 40, Level: 9, Outcome: "GameOver", CreatedAt: played},
		{Score: 12, Level: 3, Outcome: "GameOver", CreatedAt: played},
	}}
	m := boardFor(t, src)
	require.Len(t, m.Rows(), 3)

	m = press(t, m, runes("f"))
	require.Len(t, m.Rows(), 1)
	assert.Equal(t, "1", m.Rows()[0][0])
	assert.Equal(t, "Win", m.Rows()[0][3])

	m = press(t, m, runes("f"))
	require.Len(t, m.Rows(), 2)
	assert.Equal(t, []string{"2", "3"}, []string{m.Rows()[0][0], m.Rows()[1][0]})

	m = press(t, m, runes("f"))
	assert.Len(t, m.Rows(), 3, "filter cycles back to all rounds")
}

func TestScoreboardSummary(t *testing.T) {
	src := fakeSource{"board_a": {
		{Score: 196, Outcome: "Win"},
		{Score: 40, Outcome: "GameOver"},
	}}
	m := boardFor(t, src)

	assert.Contains(t, m.summary(), "rounds 2")
	assert.Contains(t, m.summary(), "wins 1")
	assert.Contains(t, m.summary(), "game overs 1")
	assert.Contains(t, m.View(), "best 196")
}

func TestScoreboardSwitchGame(t *testing.T) {
	src := fakeSource{
		"board_a": {{Score: 1, Outcome: "GameOver"}},
		"board_b": {{Score: 2, Outcome: "GameOver"}, {Score: 1, Outcome: "GameOver"}},
	}
	m := boardFor(t, src)
	require.Len(t, m.Rows(), 1)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "board_b", m.games[m.current].ID)
	assert.Len(t, m.Rows(), 2)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "board_a", m.games[m.current].ID)
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 30)

	assert.Empty(t, m.Rows())
	assert.Contains(t, m.View(), "no rounds played")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
}
