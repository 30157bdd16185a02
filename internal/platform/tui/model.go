// Package tui is the Bubble Tea front end for an interactive game.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakes-ladders/internal/engine"
	"github.com/vovakirdan/snakes-ladders/internal/session"
)

// Model is the Bubble Tea model for playing one session.
type Model struct {
	sess     *session.Session
	keys     KeyMap
	help     help.Model
	state    engine.State
	lines    []string // events of the latest roll
	notice   string
	err      error // last session error other than an illegal roll
	width    int
	height   int
	quitting bool
}

// NewModel creates a model showing the current state of sess.
func NewModel(sess *session.Session) Model {
	m := Model{
		sess:  sess,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: sess.State(),
	}
	m.keys.setFinished(m.state.Finished())
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Roll):
		return m.roll(), nil
	case key.Matches(msg, m.keys.Restart):
		return m.restart(), nil
	}
	return m, nil
}

func (m Model) roll() Model {
	state, events, err := m.sess.Roll()
	m.state = state
	m.notice = ""

	switch {
	case errors.Is(err, engine.ErrIllegalOperation):
		m.notice = "The game is over. Press r to play again."
	case err != nil:
		m.err = err
		m.notice = err.Error()
	}

	if events != nil {
		m.lines = make([]string, 0, len(events))
		for _, ev := range events {
			m.lines = append(m.lines, DescribeEvent(ev))
		}
	}

	m.keys.setFinished(m.state.Finished())
	return m
}

func (m Model) restart() Model {
	m.state = m.sess.Restart()
	m.lines = nil
	m.notice = ""
	m.keys.setFinished(false)
	return m
}

// State returns the state last shown.
func (m Model) State() engine.State {
	return m.state
}

// Err returns the last error reported by the session, such as a failure
// to record a finished game.
func (m Model) Err() error {
	return m.err
}

// View renders the board, the players and the recent moves.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("SNAKES & LADDERS"))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.sess.Board(), m.state.Players))
	b.WriteString("\n\n")
	b.WriteString(renderPlayers(m.state))

	if len(m.state.Log) > 0 {
		b.WriteString("\nRecent moves\n")
		b.WriteString(logStyle.Render(strings.Join(m.state.Log, "\n")))
		b.WriteString("\n")
	}
	if len(m.lines) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(m.lines, "\n"))
		b.WriteString("\n")
	}

	if w, ok := m.state.WinnerPlayer(); ok {
		b.WriteString("\n")
		b.WriteString(winnerBanner.Render(fmt.Sprintf("%s wins after %d moves!", w.Name, w.Moves)))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("\n%s to roll (last roll %d)\n", m.state.CurrentPlayer().Name, m.state.LastRoll))
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program for sess and blocks until the player quits.
func Run(sess *session.Session) error {
	p := tea.NewProgram(
		NewModel(sess),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
