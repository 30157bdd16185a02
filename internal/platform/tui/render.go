package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/engine"
)

// colorStyles maps player color names to lipgloss styles.
var colorStyles = map[string]lipgloss.Style{
	"red":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"purple": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"orange": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	ladderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	snakeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	logStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winnerBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
)

// cellWidth is the printed width of one board cell, without separator.
const cellWidth = 3

func playerStyle(color string) lipgloss.Style {
	if s, ok := colorStyles[color]; ok {
		return s.Bold(true)
	}
	return lipgloss.NewStyle().Bold(true)
}

// DescribeEvent returns a one-line description of ev as printed in the
// game log. Follow-up events of a move are indented.
func DescribeEvent(ev engine.Event) string {
	switch e := ev.(type) {
	case engine.Moved:
		return fmt.Sprintf("%s rolled %d: %d -> %d", e.Name, e.Roll, e.From, e.To)
	case engine.Landed:
		if e.Kind == board.Ladder {
			return fmt.Sprintf("  climbed a ladder to %d", e.To)
		}
		return fmt.Sprintf("  slid down a snake to %d", e.To)
	case engine.BonusRoll:
		return fmt.Sprintf("  %s rolls again", e.Name)
	case engine.Won:
		return fmt.Sprintf("%s wins after %d moves!", e.Name, e.Moves)
	}
	return ""
}

// renderBoard draws the track as a serpentine grid, top row first.
// Player tokens take precedence over snake and ladder markers.
func renderBoard(b *board.Board, players []engine.Player) string {
	rows := b.Rows()
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, board.RowWidth)
		for c := range grid[r] {
			grid[r][c] = strings.Repeat(" ", cellWidth)
		}
	}

	occupants := make(map[int][]engine.Player)
	for _, p := range players {
		occupants[p.Position] = append(occupants[p.Position], p)
	}

	for cell := 1; cell <= b.Goal(); cell++ {
		row, col := b.Layout(cell)
		grid[row][col] = renderCell(b, cell, occupants[cell])
	}

	lines := make([]string, 0, rows)
	for r := rows - 1; r >= 0; r-- {
		lines = append(lines, strings.Join(grid[r], " "))
	}
	return boardStyle.Render(strings.Join(lines, "\n"))
}

func renderCell(b *board.Board, cell int, here []engine.Player) string {
	switch {
	case len(here) == 1:
		token := fmt.Sprintf("%-*s", cellWidth, "@"+initial(here[0].Name))
		return playerStyle(here[0].Color).Render(token)
	case len(here) > 1:
		return titleStyle.Render(fmt.Sprintf("%-*s", cellWidth, fmt.Sprintf("*%d", len(here))))
	}

	label := fmt.Sprintf("%*d", cellWidth, cell)
	if m, ok := b.ModifierAt(cell); ok {
		if m.Kind == board.Ladder {
			return ladderStyle.Render(label)
		}
		return snakeStyle.Render(label)
	}
	return emptyStyle.Render(label)
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}

// renderPlayers lists every seat with its position and move count.
// The player to move is marked with a cursor.
func renderPlayers(s engine.State) string {
	var sb strings.Builder
	for i, p := range s.Players {
		cursor := "  "
		if !s.Finished() && i == s.Current {
			cursor = "> "
		}
		where := fmt.Sprintf("cell %d", p.Position)
		if p.Position == 0 {
			where = "start"
		}
		sb.WriteString(cursor)
		sb.WriteString(playerStyle(p.Color).Render(p.Name))
		sb.WriteString(fmt.Sprintf("  %s, %d moves\n", where, p.Moves))
	}
	return sb.String()
}
