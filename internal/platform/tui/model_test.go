package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/dice"
	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/session"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type failingRecorder struct{}

func (failingRecorder) SaveResult(session.Result) error {
	return errors.New("disk full")
}

func newTestModel(t *testing.T, cfg board.Config, rec session.Recorder, faces ...int) Model {
	t.Helper()
	g, err := engine.NewGame(engine.Players("Ann", "Ben"), cfg, dice.NewScripted(6, faces...))
	require.NoError(t, err)
	return NewModel(session.New(g, session.Options{Recorder: rec}))
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelRollKeys(t *testing.T) {
	m := newTestModel(t, board.ClassicConfig(), nil, 4, 6, 2)

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, 14, m.State().Players[0].Position)
	assert.Contains(t, m.View(), "climbed a ladder to 14")

	m, _ = press(t, m, keySpace)
	assert.Equal(t, 6, m.State().Players[1].Position)
	assert.Equal(t, 1, m.State().Current)
	assert.Contains(t, m.View(), "Ben rolls again")

	m, _ = press(t, m, keyEnter)
	s := m.State()
	assert.Equal(t, 8, s.Players[1].Position)
	assert.Equal(t, 0, s.Current)

	view := m.View()
	assert.Contains(t, view, "Ben rolled 2: 6 -> 8")
	assert.Contains(t, view, "Ann to roll (last roll 2)")
	assert.Contains(t, view, "Recent moves")
}

func TestModelRestartOnlyAfterWin(t *testing.T) {
	m := newTestModel(t, board.Config{Goal: 10, DieFaces: 6}, nil, 5, 1, 5)

	m, _ = press(t, m, runeKey('r'))
	assert.Zero(t, m.State().Players[0].Position)

	for range 3 {
		m, _ = press(t, m, keyEnter)
	}
	require.True(t, m.State().Finished())
	assert.Contains(t, m.View(), "Ann wins after 2 moves!")

	// Rolling is disabled once the game is over.
	before := m.State()
	m, _ = press(t, m, keyEnter)
	assert.Equal(t, before, m.State())

	m, _ = press(t, m, runeKey('r'))
	s := m.State()
	assert.False(t, s.Finished())
	for _, p := range s.Players {
		assert.Zero(t, p.Position)
	}
	assert.NotContains(t, m.View(), "wins after")
}

func TestModelQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey('q'), keyCtrlC} {
		m := newTestModel(t, board.ClassicConfig(), nil)

		m, cmd := press(t, m, k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %q", k.String())
		assert.Empty(t, m.View())
	}
}

func TestModelReportsRecordFailure(t *testing.T) {
	m := newTestModel(t, board.Config{Goal: 5, DieFaces: 6}, failingRecorder{}, 5)

	m, _ = press(t, m, keyEnter)
	assert.True(t, m.State().Finished())
	require.ErrorIs(t, m.Err(), session.ErrRecordFailed)
	assert.Contains(t, m.View(), "disk full")
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(t, board.ClassicConfig(), nil)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	nm := next.(Model)
	assert.Equal(t, 100, nm.width)
	assert.Equal(t, 40, nm.height)
}

func TestRenderBoardTokens(t *testing.T) {
	b := board.MustNew(board.Config{Goal: 20, DieFaces: 6, Ladders: map[int]int{3: 12}})
	out := renderBoard(b, []engine.Player{
		{Name: "Ann", Color: "red", Position: 5},
		{Name: "Ben", Color: "blue", Position: 7},
		{Name: "Cat", Color: "green", Position: 7},
		{Name: "Dan", Color: "yellow", Position: 0},
	})

	assert.Contains(t, out, "@A")
	assert.Contains(t, out, "*2")
	assert.Contains(t, out, "20")
	assert.NotContains(t, out, "@D")
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		ev   engine.Event
		want string
	}{
		{engine.Moved{Name: "Ann", Roll: 4, From: 0, To: 4}, "Ann rolled 4: 0 -> 4"},
		{engine.Landed{Name: "Ann", Kind: board.Ladder, From: 4, To: 14}, "  climbed a ladder to 14"},
		{engine.Landed{Name: "Ann", Kind: board.Snake, From: 16, To: 6}, "  slid down a snake to 6"},
		{engine.BonusRoll{Name: "Ben"}, "  Ben rolls again"},
		{engine.Won{Name: "Ann", Moves: 12}, "Ann wins after 12 moves!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeEvent(tt.ev))
	}
}
